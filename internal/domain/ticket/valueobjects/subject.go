package valueobjects

import "fmt"

type TicketSubject string

const (
	SubjectOrderIssue     TicketSubject = "order_issue"
	SubjectPaymentIssue   TicketSubject = "payment_issue"
	SubjectDelivery       TicketSubject = "delivery"
	SubjectProductInquiry TicketSubject = "product_inquiry"
	SubjectAccount        TicketSubject = "account"
	SubjectOther          TicketSubject = "other"
)

var validTicketSubjects = map[TicketSubject]bool{
	SubjectOrderIssue:     true,
	SubjectPaymentIssue:   true,
	SubjectDelivery:       true,
	SubjectProductInquiry: true,
	SubjectAccount:        true,
	SubjectOther:          true,
}

var ticketSubjectLabels = map[TicketSubject]string{
	SubjectOrderIssue:     "Order Issue",
	SubjectPaymentIssue:   "Payment Issue",
	SubjectDelivery:       "Delivery",
	SubjectProductInquiry: "Product Inquiry",
	SubjectAccount:        "Account",
	SubjectOther:          "Other",
}

func (s TicketSubject) String() string {
	return string(s)
}

// Label returns the human-readable form used in emails and pages.
func (s TicketSubject) Label() string {
	if label, ok := ticketSubjectLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s TicketSubject) IsValid() bool {
	return validTicketSubjects[s]
}

func NewTicketSubject(s string) (TicketSubject, error) {
	subject := TicketSubject(s)
	if !subject.IsValid() {
		return "", fmt.Errorf("invalid ticket subject: %s", s)
	}
	return subject, nil
}

// AllTicketSubjects lists the selectable subjects in display order.
func AllTicketSubjects() []TicketSubject {
	return []TicketSubject{
		SubjectOrderIssue,
		SubjectPaymentIssue,
		SubjectDelivery,
		SubjectProductInquiry,
		SubjectAccount,
		SubjectOther,
	}
}
