package notify

import (
	"fmt"
	"strings"
)

// AdminOrderAlert renders the message sent to the shop admin after checkout.
func AdminOrderAlert(orderID int64, customerName, contactNumber, orderItems string, totalPrice float64, additionalInfo string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🛒 New Order #%d\n\n", orderID)
	fmt.Fprintf(&b, "Customer: %s\n", customerName)
	fmt.Fprintf(&b, "Contact: %s\n\n", contactNumber)
	fmt.Fprintf(&b, "Items:\n%s\n\n", orderItems)
	fmt.Fprintf(&b, "Total: Rs. %.2f", totalPrice)
	if additionalInfo != "" {
		fmt.Fprintf(&b, "\n\nNotes: %s", additionalInfo)
	}
	return b.String()
}

// CustomerOrderConfirmation renders the confirmation sent to the customer,
// including the bank transfer instructions.
func CustomerOrderConfirmation(orderID int64, customerName, orderItems string, totalPrice float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s! 📚\n\n", customerName)
	fmt.Fprintf(&b, "Your order #%d has been received.\n\n", orderID)
	fmt.Fprintf(&b, "Items:\n%s\n\n", orderItems)
	fmt.Fprintf(&b, "Total: Rs. %.2f\n\n", totalPrice)
	b.WriteString("To confirm your order, please transfer the total to our bank account ")
	b.WriteString("and reply here with the payment slip. ")
	b.WriteString("Printing starts once the payment is confirmed. Thank you!")
	return b.String()
}

// ContactInquiry renders a customer inquiry forwarded to the shop admin.
func ContactInquiry(name, email, number, message string) string {
	var b strings.Builder
	b.WriteString("📩 New inquiry\n\n")
	fmt.Fprintf(&b, "From: %s\n", name)
	if email != "" {
		fmt.Fprintf(&b, "Email: %s\n", email)
	}
	if number != "" {
		fmt.Fprintf(&b, "Number: %s\n", number)
	}
	fmt.Fprintf(&b, "\n%s", message)
	return b.String()
}
