package notify

import (
	"strings"
	"testing"
)

func TestAdminOrderAlert(t *testing.T) {
	msg := AdminOrderAlert(12, "Amal", "+94771234567", "Pure Maths 1 [Normal] (2019 Jan - 2020 Oct)", 1675, "deliver to school")

	for _, fragment := range []string{
		"New Order #12",
		"Customer: Amal",
		"Contact: +94771234567",
		"Pure Maths 1 [Normal] (2019 Jan - 2020 Oct)",
		"Total: Rs. 1675.00",
		"Notes: deliver to school",
	} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("alert missing %q:\n%s", fragment, msg)
		}
	}
}

func TestAdminOrderAlertNoNotes(t *testing.T) {
	msg := AdminOrderAlert(12, "Amal", "+94771234567", "items", 100, "")
	if strings.Contains(msg, "Notes:") {
		t.Fatalf("alert should omit empty notes:\n%s", msg)
	}
}

func TestCustomerOrderConfirmation(t *testing.T) {
	msg := CustomerOrderConfirmation(12, "Amal", "Pure Maths 1 [Normal] (2019 Jan)", 780)

	for _, fragment := range []string{
		"Hi Amal!",
		"order #12",
		"Total: Rs. 780.00",
		"bank account",
	} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("confirmation missing %q:\n%s", fragment, msg)
		}
	}
}

func TestContactInquiry(t *testing.T) {
	msg := ContactInquiry("Nimal", "nimal@example.com", "+94770000000", "Do you stock M1 papers?")

	for _, fragment := range []string{
		"From: Nimal",
		"Email: nimal@example.com",
		"Number: +94770000000",
		"Do you stock M1 papers?",
	} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("inquiry missing %q:\n%s", fragment, msg)
		}
	}
}

func TestContactInquiryOptionalFieldsOmitted(t *testing.T) {
	msg := ContactInquiry("Nimal", "", "", "hello")
	if strings.Contains(msg, "Email:") || strings.Contains(msg, "Number:") {
		t.Fatalf("inquiry should omit empty contact fields:\n%s", msg)
	}
}
