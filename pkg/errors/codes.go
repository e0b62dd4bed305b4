package errors

type Code string

const (
	CodeUnknown          Code = "UNKNOWN"
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeAlreadyExists    Code = "ALREADY_EXISTS"
	CodeSenderUnknown    Code = "SENDER_UNKNOWN"
	CodeRecipientUnknown Code = "RECIPIENT_UNKNOWN"
	CodeInternal         Code = "INTERNAL"
)
