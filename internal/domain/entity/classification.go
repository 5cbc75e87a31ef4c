package entity

// Sentiment represents the overall tone detected in a ticket
type Sentiment string

const (
	SentimentNegative Sentiment = "Negative"
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
)

// Priority represents the inferred urgency of a ticket
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// IssueType represents the coarse category of the customer's problem.
// The zero value means no issue type could be detected.
type IssueType string

const (
	IssueTypeBilling   IssueType = "Billing"
	IssueTypeDelivery  IssueType = "Delivery"
	IssueTypeTechnical IssueType = "Technical"
	IssueTypeNone      IssueType = ""
)

// Intent represents the action the customer wants performed
type Intent string

const (
	IntentRequestRefund       Intent = "Request Refund"
	IntentRequestCancellation Intent = "Request Cancellation"
	IntentRequestStatusUpdate Intent = "Request Status Update"
	IntentGeneralComplaint    Intent = "General Complaint"
)

// CategoryName returns the display category derived from the issue type.
// An undetected issue type maps to "Uncategorized".
func (t IssueType) CategoryName() string {
	switch t {
	case IssueTypeBilling:
		return "Billing Issues"
	case IssueTypeDelivery:
		return "Delivery Issues"
	case IssueTypeTechnical:
		return "Technical Support"
	default:
		return "Uncategorized"
	}
}

// Detected reports whether an issue type was matched
func (t IssueType) Detected() bool {
	return t != IssueTypeNone
}
