package models

import "github.com/shopyard/fulfillment/shared/apperrors"

// PaymentMethod identifies a payment provider. It is also the provider id
// handlers register under.
type PaymentMethod string

const (
	PaymentMethodCOD     PaymentMethod = "COD"
	PaymentMethodBanking PaymentMethod = "BANKING"
	PaymentMethodPaypal  PaymentMethod = "PAYPAL"
)

var allPaymentMethods = map[string]PaymentMethod{
	PaymentMethodCOD.String():     PaymentMethodCOD,
	PaymentMethodBanking.String(): PaymentMethodBanking,
	PaymentMethodPaypal.String():  PaymentMethodPaypal,
}

func ParsePaymentMethod(value string) (PaymentMethod, error) {
	if method, ok := allPaymentMethods[value]; ok {
		return method, nil
	}
	return "", apperrors.InvalidArgument("unknown payment method: %s", value)
}

func (m PaymentMethod) String() string {
	return string(m)
}

// PaymentStatus is the lifecycle state of a payment record.
type PaymentStatus string

const (
	PaymentStatusNew        PaymentStatus = "NEW"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusCompleted  PaymentStatus = "COMPLETED"
	PaymentStatusCancelled  PaymentStatus = "CANCELLED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
)

var allPaymentStatuses = map[string]PaymentStatus{
	PaymentStatusNew.String():        PaymentStatusNew,
	PaymentStatusProcessing.String(): PaymentStatusProcessing,
	PaymentStatusCompleted.String():  PaymentStatusCompleted,
	PaymentStatusCancelled.String():  PaymentStatusCancelled,
	PaymentStatusFailed.String():     PaymentStatusFailed,
}

func ParsePaymentStatus(value string) (PaymentStatus, error) {
	if status, ok := allPaymentStatuses[value]; ok {
		return status, nil
	}
	return "", apperrors.InvalidArgument("unknown payment status: %s", value)
}

func (s PaymentStatus) String() string {
	return string(s)
}
