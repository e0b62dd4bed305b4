package model

import "time"

type (
	User struct {
		Username  string    `json:"username" bson:"username"`
		CreatedAt time.Time `json:"created_at" bson:"created_at"`
	}
)
