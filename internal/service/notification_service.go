package service

import (
	"bytes"
	"fmt"
	"reflect"
	"text/template"

	"github.com/rs/zerolog"

	"github.com/northwestmeats/storefront/internal/infra/mail"
	"github.com/northwestmeats/storefront/internal/model"
)

// INotificationService sends the storefront's outbound email. Every method is
// fire-and-forget: delivery runs on a detached goroutine, failures are logged
// and dropped, and the triggering request never waits on the outcome.
type INotificationService interface {
	NotifyOrderConfirmation(order *model.Order)
	NotifyOrderStatusUpdate(order *model.Order)
	NotifyInquiryReceived(inquiry *model.ContactInquiry)
}

type NotificationService struct {
	sender     mail.EmailSender
	adminEmail string
	logger     zerolog.Logger
}

func NewNotificationService(sender mail.EmailSender, adminEmail string, logger zerolog.Logger) INotificationService {
	if reflect.ValueOf(sender).IsNil() {
		panic("notification service initialization failed: sender cannot be nil")
	}
	return &NotificationService{
		sender:     sender,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

func (n *NotificationService) NotifyOrderConfirmation(order *model.Order) {
	go n.send("Order Confirmation - North West Meats", order.CustomerEmail, orderConfirmationTemplate, order)
}

func (n *NotificationService) NotifyOrderStatusUpdate(order *model.Order) {
	go n.send("Order Status Update - North West Meats", order.CustomerEmail, orderStatusTemplate, order)
}

func (n *NotificationService) NotifyInquiryReceived(inquiry *model.ContactInquiry) {
	go n.send("New Customer Inquiry - North West Meats", n.adminEmail, inquiryTemplate, inquiry)
}

func (n *NotificationService) send(subject, to string, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		n.logger.Error().Err(err).Str("subject", subject).Msg("render notification email")
		return
	}
	if err := n.sender.SendEmail(subject, buf.String(), []string{to}, nil, nil, nil); err != nil {
		n.logger.Error().Err(err).Str("subject", subject).Str("to", to).Msg("send notification email")
		return
	}
	n.logger.Info().Str("subject", subject).Str("to", to).Msg("notification email sent")
}

var tmplFuncs = template.FuncMap{
	"amount": func(price float64, quantity int) string {
		return fmt.Sprintf("%.2f", price*float64(quantity))
	},
	"money": func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	},
}

var orderConfirmationTemplate = template.Must(template.New("orderConfirmation").Funcs(tmplFuncs).Parse(`
<h2>Thank you for your order!</h2>
<p>Hi {{.CustomerName}},</p>
<p>We've received your order and it's being processed.</p>

<h3>Order Details:</h3>
<ul>
{{range .Items}}  <li>{{.Name}} - Quantity: {{.Quantity}} - ${{amount .Price .Quantity}}</li>
{{end}}</ul>

<p><strong>Total Amount: ${{money .TotalAmount}}</strong></p>
<p><strong>Status: {{.Status}}</strong></p>

<p>We'll notify you when your order is ready for pickup!</p>

<p>Best regards,<br>North West Meats Team</p>
`))

var orderStatusTemplate = template.Must(template.New("orderStatus").Funcs(tmplFuncs).Parse(`
<h2>Order Status Update</h2>
<p>Hi {{.CustomerName}},</p>
<p>Your order status has been updated to: <strong>{{.Status}}</strong></p>

{{if eq (printf "%s" .Status) "ready"}}<p>Your order is ready for pickup! Please visit our store at your convenience.</p>
{{else}}<p>Your order is being processed. We'll notify you when it's ready.</p>
{{end}}
<p><strong>Order Total: ${{money .TotalAmount}}</strong></p>

<p>Best regards,<br>North West Meats Team</p>
`))

var inquiryTemplate = template.Must(template.New("inquiry").Parse(`
<h2>New Customer Inquiry</h2>
<p><strong>From:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
<hr>
<p><em>Submitted on {{.CreatedAt.Format "Jan 2, 2006 3:04 PM"}}</em></p>
`))
