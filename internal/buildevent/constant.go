package buildevent

// JSON member names of the TeamCity webhook body.
const (
	fieldEventKind = "eventKind"
	fieldPayload   = "payload"

	fieldID          = "id"
	fieldBuildTypeID = "buildTypeId"
	fieldNumber      = "number"
	fieldStatus      = "status"
	fieldState       = "state"
	fieldHref        = "href"
	fieldWebURL      = "webUrl"
	fieldStatusText  = "statusText"
	fieldBuildType   = "buildType"

	fieldName        = "name"
	fieldDescription = "description"
	fieldProjectName = "projectName"
	fieldProjectID   = "projectId"

	fieldStartDate  = "startDate"
	fieldFinishDate = "finishDate"
	fieldQueuedDate = "queuedDate"

	fieldRunningInfo  = "runningInfo"
	fieldCanceledInfo = "canceledInfo"
	fieldAgent        = "agent"
	fieldLastChanges  = "lastChanges"
)

// requiredPayloadFields are reported as missing together, in this order.
var requiredPayloadFields = []string{
	fieldID,
	fieldBuildTypeID,
	fieldNumber,
	fieldStatus,
	fieldState,
	fieldWebURL,
	fieldBuildType,
}

// Defaults used by SanitizeBuildEvent.
const (
	DefaultBuildTypeID = "unknown"
	DefaultNumber      = "0"
	DefaultStatus      = "UNKNOWN"
	DefaultState       = "unknown"
	DefaultStatusText  = "Unknown"
	DefaultBuildName   = "Unknown Build"
	DefaultProjectName = "Unknown Project"
)

// Validation messages.
const (
	ErrMsgEventMissing       = "Event is null or undefined"
	ErrMsgEventNotObject     = "Event must be an object"
	ErrMsgKindMissing        = "Missing eventKind"
	ErrMsgKindNotString      = "eventKind must be a string"
	ErrMsgPayloadMissing     = "Missing payload"
	ErrMsgPayloadNotObject   = "payload must be an object"
	ErrMsgMissingFieldFmt    = "Missing required field: payload.%s"
	ErrMsgBuildTypeNotObject = "payload.buildType must be an object"
	WarnMsgIDNotPositive     = "payload.id should be a positive number"
	WarnMsgWebURLNotString   = "payload.webUrl should be a string"
)
