package domain

// InquiryStatus is the handling state of an inquiry.
type InquiryStatus string

const (
	InquiryUnread    InquiryStatus = "unread"
	InquiryResponded InquiryStatus = "responded"
	InquiryResolved  InquiryStatus = "resolved"
)

// InquiryStatuses lists every inquiry status.
var InquiryStatuses = []InquiryStatus{InquiryUnread, InquiryResponded, InquiryResolved}

var inquiryStatusSet = setOf(InquiryStatuses)

// Valid reports whether s is a known inquiry status.
func (s InquiryStatus) Valid() bool { return inquiryStatusSet[s] }

func (s InquiryStatus) MarshalText() ([]byte, error) { return []byte(wireName(string(s))), nil }

func (s *InquiryStatus) UnmarshalText(b []byte) error {
	*s = InquiryStatus(localName(string(b)))
	return nil
}

// InquiryType classifies what the sender is asking about.
type InquiryType string

const (
	InquiryGeneral       InquiryType = "general"
	InquiryCollaboration InquiryType = "collaboration"
	InquiryPricing       InquiryType = "pricing"
	InquirySupport       InquiryType = "support"
)

// InquiryTypes lists every inquiry type.
var InquiryTypes = []InquiryType{InquiryGeneral, InquiryCollaboration, InquiryPricing, InquirySupport}

var inquiryTypeSet = setOf(InquiryTypes)

// Valid reports whether t is a known inquiry type.
func (t InquiryType) Valid() bool { return inquiryTypeSet[t] }

func (t InquiryType) MarshalText() ([]byte, error) { return []byte(wireName(string(t))), nil }

func (t *InquiryType) UnmarshalText(b []byte) error {
	*t = InquiryType(localName(string(b)))
	return nil
}

// Inquiry is a message sent through the public contact form.
type Inquiry struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Subject      string        `json:"subject"`
	Message      string        `json:"message"`
	Date         string        `json:"inquiry_date,omitempty"`
	Status       InquiryStatus `json:"status"`
	Type         InquiryType   `json:"type"`
	AssignedTo   string        `json:"assigned_to,omitempty"` // team member ID
	Response     string        `json:"response,omitempty"`
	ResponseDate string        `json:"response_date,omitempty"`
}
