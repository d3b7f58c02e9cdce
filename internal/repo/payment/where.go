// Code generated by ent, DO NOT EDIT.

package payment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/clinovahq/clinova_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldCreatedAt, v))
}

// InvoiceID applies equality check predicate on the "invoice_id" field. It's identical to InvoiceIDEQ.
func InvoiceID(v uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldInvoiceID, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v int64) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldAmount, v))
}

// ReceiptNo applies equality check predicate on the "receipt_no" field. It's identical to ReceiptNoEQ.
func ReceiptNo(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldReceiptNo, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldNotes, v))
}

// ReceivedBy applies equality check predicate on the "received_by" field. It's identical to ReceivedByEQ.
func ReceivedBy(v uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldReceivedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldCreatedAt, v))
}

// InvoiceIDEQ applies the EQ predicate on the "invoice_id" field.
func InvoiceIDEQ(v uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldInvoiceID, v))
}

// InvoiceIDNEQ applies the NEQ predicate on the "invoice_id" field.
func InvoiceIDNEQ(v uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldInvoiceID, v))
}

// InvoiceIDIn applies the In predicate on the "invoice_id" field.
func InvoiceIDIn(vs ...uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldInvoiceID, vs...))
}

// InvoiceIDNotIn applies the NotIn predicate on the "invoice_id" field.
func InvoiceIDNotIn(vs ...uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldInvoiceID, vs...))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v int64) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v int64) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...int64) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...int64) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v int64) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v int64) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v int64) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v int64) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldAmount, v))
}

// MethodEQ applies the EQ predicate on the "method" field.
func MethodEQ(v Method) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldMethod, v))
}

// MethodNEQ applies the NEQ predicate on the "method" field.
func MethodNEQ(v Method) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldMethod, v))
}

// MethodIn applies the In predicate on the "method" field.
func MethodIn(vs ...Method) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldMethod, vs...))
}

// MethodNotIn applies the NotIn predicate on the "method" field.
func MethodNotIn(vs ...Method) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldMethod, vs...))
}

// ReceiptNoEQ applies the EQ predicate on the "receipt_no" field.
func ReceiptNoEQ(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldReceiptNo, v))
}

// ReceiptNoNEQ applies the NEQ predicate on the "receipt_no" field.
func ReceiptNoNEQ(v string) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldReceiptNo, v))
}

// ReceiptNoIn applies the In predicate on the "receipt_no" field.
func ReceiptNoIn(vs ...string) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldReceiptNo, vs...))
}

// ReceiptNoNotIn applies the NotIn predicate on the "receipt_no" field.
func ReceiptNoNotIn(vs ...string) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldReceiptNo, vs...))
}

// ReceiptNoGT applies the GT predicate on the "receipt_no" field.
func ReceiptNoGT(v string) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldReceiptNo, v))
}

// ReceiptNoGTE applies the GTE predicate on the "receipt_no" field.
func ReceiptNoGTE(v string) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldReceiptNo, v))
}

// ReceiptNoLT applies the LT predicate on the "receipt_no" field.
func ReceiptNoLT(v string) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldReceiptNo, v))
}

// ReceiptNoLTE applies the LTE predicate on the "receipt_no" field.
func ReceiptNoLTE(v string) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldReceiptNo, v))
}

// ReceiptNoContains applies the Contains predicate on the "receipt_no" field.
func ReceiptNoContains(v string) predicate.Payment {
	return predicate.Payment(sql.FieldContains(FieldReceiptNo, v))
}

// ReceiptNoHasPrefix applies the HasPrefix predicate on the "receipt_no" field.
func ReceiptNoHasPrefix(v string) predicate.Payment {
	return predicate.Payment(sql.FieldHasPrefix(FieldReceiptNo, v))
}

// ReceiptNoHasSuffix applies the HasSuffix predicate on the "receipt_no" field.
func ReceiptNoHasSuffix(v string) predicate.Payment {
	return predicate.Payment(sql.FieldHasSuffix(FieldReceiptNo, v))
}

// ReceiptNoIsNil applies the IsNil predicate on the "receipt_no" field.
func ReceiptNoIsNil() predicate.Payment {
	return predicate.Payment(sql.FieldIsNull(FieldReceiptNo))
}

// ReceiptNoNotNil applies the NotNil predicate on the "receipt_no" field.
func ReceiptNoNotNil() predicate.Payment {
	return predicate.Payment(sql.FieldNotNull(FieldReceiptNo))
}

// ReceiptNoEqualFold applies the EqualFold predicate on the "receipt_no" field.
func ReceiptNoEqualFold(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEqualFold(FieldReceiptNo, v))
}

// ReceiptNoContainsFold applies the ContainsFold predicate on the "receipt_no" field.
func ReceiptNoContainsFold(v string) predicate.Payment {
	return predicate.Payment(sql.FieldContainsFold(FieldReceiptNo, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Payment {
	return predicate.Payment(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Payment {
	return predicate.Payment(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Payment {
	return predicate.Payment(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Payment {
	return predicate.Payment(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Payment {
	return predicate.Payment(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Payment {
	return predicate.Payment(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Payment {
	return predicate.Payment(sql.FieldContainsFold(FieldNotes, v))
}

// ReceivedByEQ applies the EQ predicate on the "received_by" field.
func ReceivedByEQ(v uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldEQ(FieldReceivedBy, v))
}

// ReceivedByNEQ applies the NEQ predicate on the "received_by" field.
func ReceivedByNEQ(v uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldNEQ(FieldReceivedBy, v))
}

// ReceivedByIn applies the In predicate on the "received_by" field.
func ReceivedByIn(vs ...uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldIn(FieldReceivedBy, vs...))
}

// ReceivedByNotIn applies the NotIn predicate on the "received_by" field.
func ReceivedByNotIn(vs ...uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldNotIn(FieldReceivedBy, vs...))
}

// ReceivedByGT applies the GT predicate on the "received_by" field.
func ReceivedByGT(v uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldGT(FieldReceivedBy, v))
}

// ReceivedByGTE applies the GTE predicate on the "received_by" field.
func ReceivedByGTE(v uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldGTE(FieldReceivedBy, v))
}

// ReceivedByLT applies the LT predicate on the "received_by" field.
func ReceivedByLT(v uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldLT(FieldReceivedBy, v))
}

// ReceivedByLTE applies the LTE predicate on the "received_by" field.
func ReceivedByLTE(v uuid.UUID) predicate.Payment {
	return predicate.Payment(sql.FieldLTE(FieldReceivedBy, v))
}

// HasInvoice applies the HasEdge predicate on the "invoice" edge.
func HasInvoice() predicate.Payment {
	return predicate.Payment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InvoiceTable, InvoiceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInvoiceWith applies the HasEdge predicate on the "invoice" edge with a given conditions (other predicates).
func HasInvoiceWith(preds ...predicate.Invoice) predicate.Payment {
	return predicate.Payment(func(s *sql.Selector) {
		step := newInvoiceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Payment) predicate.Payment {
	return predicate.Payment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Payment) predicate.Payment {
	return predicate.Payment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Payment) predicate.Payment {
	return predicate.Payment(sql.NotPredicates(p))
}
