package models

// TransactionResourceDB is the transaction document held in the transaction
// store
type TransactionResourceDB struct {
	ID             string                 `bson:"_id"`
	OrderID        string                 `bson:"order_id"`
	State          string                 `bson:"state"`
	PaymentDetails map[string]interface{} `bson:"easy_payment_details,omitempty"`
}
