package formatter

// Card colors.
const (
	ColorStarted     = 0x3498DB
	ColorSuccess     = 0x27AE60
	ColorFailure     = 0xE74C3C
	ColorInterrupted = 0xF39C12
	ColorGeneric     = 0x5865F2
)

// Card footers.
const (
	FooterBuild   = "TeamCity Build Notification"
	FooterGeneric = "TeamCity Webhook (generic format)"
)

// Field names shared by the build cards.
const (
	FieldProject       = "Project"
	FieldBuildType     = "Build Type"
	FieldBuildNumber   = "Build Number"
	FieldStatus        = "Status"
	FieldAgent         = "Agent"
	FieldProgress      = "Progress"
	FieldTimeRemaining = "Est. Time Remaining"
	FieldCurrentStage  = "Current Stage"
	FieldStartedAt     = "Started At"
	FieldFinishedAt    = "Finished At"
	FieldDuration      = "Build Duration"
	FieldLastChange    = "Last Change"
	FieldChanges       = "Changes"
	FieldCancelReason  = "Cancellation Reason"
	FieldCanceledBy    = "Canceled By"
	FieldCanceledAt    = "Canceled At"
	FieldElapsed       = "Elapsed Time"
	FieldLink          = "TeamCity Link"
	FieldError         = "Error"
	FieldPayload       = "Payload"
	FieldNotice        = "Notice"
)

const (
	linkLabel          = "View in TeamCity"
	statusSuccess      = "SUCCESS"
	unknownValue       = "Unknown"
	titlePrefixGeneric = "Webhook Event: "
	emptyPlaceholder   = "(empty)"

	msgInvalidEvent  = "Invalid or missing event data"
	msgPayloadFailed = "Failed to process payload data"
	msgNoPayload     = "No payload data provided"
	msgUnformattable = "Received a webhook event that could not be formatted"
)

// Generic walk limits. Discord allows 25 fields; the walk stops at 20.
const (
	genericMaxDepth      = 2
	genericMaxFields     = 20
	genericMaxArrayItems = 5
	simpleObjectMaxKeys  = 3
	inlineMaxLength      = 50
)

// priorityKeys are rendered before any other key of the same object.
var priorityKeys = map[string]bool{
	"id":         true,
	"number":     true,
	"status":     true,
	"state":      true,
	"statusText": true,
	"buildType":  true,
	"agent":      true,
}
