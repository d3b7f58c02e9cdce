package invoice

import "errors"

var (
	ErrInvoiceNotFound       = errors.New("invoice not found")
	ErrPatientNotFound       = errors.New("patient not found")
	ErrVisitNotFound         = errors.New("visit not found")
	ErrNoItems               = errors.New("invoice needs at least one line item")
	ErrInvalidItem           = errors.New("line items need a description and non-negative quantity and unit price")
	ErrDiscountConflict      = errors.New("fixed and percent discounts are mutually exclusive")
	ErrInvalidDiscount       = errors.New("invalid discount")
	ErrMissingDiscountReason = errors.New("discount reason is required")
	ErrInvalidStatus         = errors.New("invalid invoice status")
	ErrInvalidMethod         = errors.New("invalid payment method")
	ErrInvalidTaxRate        = errors.New("tax rate must be between 0 and 100")
	ErrInvalidAmount         = errors.New("amount must be positive")
	ErrOverpayment           = errors.New("payment exceeds outstanding balance")
	ErrRefundExceedsPaid     = errors.New("refund exceeds the amount paid")
	ErrMissingReason         = errors.New("refund reason is required")
	ErrNotEditable           = errors.New("invoice with recorded payments cannot be edited")
)
