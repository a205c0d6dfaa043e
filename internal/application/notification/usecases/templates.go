package usecases

import (
	"bytes"
	"fmt"
	"text/template"

	"rannaghore/internal/domain/notification"
)

// RenderedEmail is a notification payload rendered into a sendable message.
// HTMLBody is empty for notifications that only have a plain-text form.
type RenderedEmail struct {
	Subject  string
	Body     string
	HTMLBody string
}

const orderConfirmationBody = `Dear {{.customer_name}},

Thank you for your order!

Order Details:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
Order Number: {{.order_number}}
Product: {{.product_name}}
Total Amount: ৳{{.total}}
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Your order is being processed and will be delivered soon.
We'll send you tracking information once your order is shipped.

Thank you for shopping with Rannaghore Protidin!

Best regards,
Rannaghore Protidin Team
`

const orderConfirmationHTMLBody = `<p>Dear {{.customer_name}},</p>
<p>Thank you for your order!</p>
<h3>Order Details</h3>
<table>
<tr><td>Order Number:</td><td><strong>{{.order_number}}</strong></td></tr>
<tr><td>Product:</td><td>{{.product_name}}</td></tr>
<tr><td>Total Amount:</td><td><strong>৳{{.total}}</strong></td></tr>
</table>
<p>Your order is being processed and will be delivered soon.<br>
We'll send you tracking information once your order is shipped.</p>
<p>Thank you for shopping with Rannaghore Protidin!</p>
<p>Best regards,<br>Rannaghore Protidin Team</p>
`

const ticketConfirmationBody = `Dear {{.name}},

Thank you for contacting Rannaghore Protidin Support!

We have received your support ticket and our team will review it shortly.

Ticket Details:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━
Ticket Number: {{.ticket_number}}
Subject: {{.subject}}
Status: {{.status}}
Submitted: {{.submitted}}

Your Message:
{{.message}}
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

What happens next?
• Our support team will review your ticket
• You'll receive a response within 24 hours
• Check your email for updates

You can reply directly to this email if you have additional information to add to your ticket.

Need urgent help?
📞 Call us: {{.support_phone}} (Mon-Fri, 9AM-6PM)
💬 WhatsApp: {{.support_phone}}

Thank you for your patience!

Best regards,
Rannaghore Protidin Support Team
`

const ticketAlertBody = `New Support Ticket Received

Ticket Number: {{.ticket_number}}
━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Customer Information:
Name: {{.name}}
Email: {{.email}}
Phone: {{.phone}}
Order Number: {{.order_number}}

Subject: {{.subject}}
Status: {{.status}}
Submitted: {{.submitted}}

Message:
{{.message}}

━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━

Action Required:
Please review and respond to this ticket within 24 hours.
`

var emailTemplates = map[notification.Kind]struct {
	subject  string
	body     *template.Template
	htmlBody *template.Template
}{
	notification.KindOrderConfirmation: {
		subject:  "Order Confirmation - %s",
		body:     template.Must(template.New("order_confirmation").Parse(orderConfirmationBody)),
		htmlBody: template.Must(template.New("order_confirmation_html").Parse(orderConfirmationHTMLBody)),
	},
	notification.KindTicketConfirmation: {
		subject: "Support Ticket Received - %s",
		body:    template.Must(template.New("ticket_confirmation").Parse(ticketConfirmationBody)),
	},
	notification.KindTicketAlert: {
		subject: "New Support Ticket - %s",
		body:    template.Must(template.New("ticket_alert").Parse(ticketAlertBody)),
	},
}

// optional payload fields shown as "Not provided" when blank, matching the
// support-team alert format.
var optionalPayloadFields = []string{"phone", "order_number"}

// RenderEmail turns a stored notification into subject and body text. The
// subject carries the order or ticket number from the payload "ref" key.
func RenderEmail(n *notification.Notification) (*RenderedEmail, error) {
	tmpl, ok := emailTemplates[n.Kind()]
	if !ok {
		return nil, fmt.Errorf("no email template for notification kind %s", n.Kind())
	}

	payload := make(map[string]string, len(n.Payload()))
	for k, v := range n.Payload() {
		payload[k] = v
	}
	for _, field := range optionalPayloadFields {
		if payload[field] == "" {
			payload[field] = "Not provided"
		}
	}

	var body bytes.Buffer
	if err := tmpl.body.Execute(&body, payload); err != nil {
		return nil, fmt.Errorf("failed to render %s body: %w", n.Kind(), err)
	}

	htmlBody := ""
	if tmpl.htmlBody != nil {
		var buf bytes.Buffer
		if err := tmpl.htmlBody.Execute(&buf, payload); err != nil {
			return nil, fmt.Errorf("failed to render %s html body: %w", n.Kind(), err)
		}
		htmlBody = buf.String()
	}

	return &RenderedEmail{
		Subject:  fmt.Sprintf(tmpl.subject, payload["ref"]),
		Body:     body.String(),
		HTMLBody: htmlBody,
	}, nil
}
