package services

import (
	"backoffice_server/structs"
	"backoffice_server/structs/tables"
	"fmt"
	"strings"
	"sync"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	emailClient     *resend.Client
	emailClientOnce = sync.Once{}
)

type EmailService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	client *resend.Client
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config) *EmailService {
	return &EmailService{
		logger: logger,
		cfg:    cfg,
		client: getEmailClient(cfg.Email.APIKey),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	emailClientOnce.Do(func() {
		emailClient = resend.NewClient(apiKey)
	})
	return emailClient
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.FromAddress,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := es.client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

var statusLines = map[tables.OrderStatus]string{
	tables.OrderStatusPending:    "We have received your order and will start processing it shortly.",
	tables.OrderStatusProcessing: "Your order is being prepared.",
	tables.OrderStatusShipped:    "Your order is on its way.",
	tables.OrderStatusDelivered:  "Your order has been delivered. Enjoy!",
	tables.OrderStatusCancelled:  "Your order has been cancelled. Contact us if this is unexpected.",
}

// SendOrderStatusEmail notifies the customer that their order moved to
// a new status. A disabled mailer or missing address is not an error.
func (es *EmailService) SendOrderStatusEmail(customer *tables.Customer, order *tables.Order, status tables.OrderStatus) error {
	if !es.cfg.Email.Enabled {
		return nil
	}
	if customer == nil || strings.TrimSpace(customer.Email) == "" {
		return nil
	}

	line, ok := statusLines[status]
	if !ok {
		line = fmt.Sprintf("Your order status changed to %s.", status)
	}

	subject := fmt.Sprintf("Order update: %s", status)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>%s</p><p>Order reference: %s<br>Order total: %s</p>",
		customer.Username, line, order.ID, order.TotalPrice,
	)

	return es.SendEmail([]string{customer.Email}, subject, body)
}
