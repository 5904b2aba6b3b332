package domain

// Column names of the transaction table.
const (
	ColTransactionID   = "TransactionID"
	ColCustomerName    = "CustomerName"
	ColProduct         = "Product"
	ColPrice           = "Price"
	ColQuantity        = "Quantity"
	ColTransactionDate = "TransactionDate"
)

// ColumnNames returns the table columns in canonical order.
func ColumnNames() []string {
	return []string{
		ColTransactionID,
		ColCustomerName,
		ColProduct,
		ColPrice,
		ColQuantity,
		ColTransactionDate,
	}
}

// Transaction is a single e-commerce transaction record as loaded from a
// dataset. Pointer fields are nullable; TransactionDate stays raw text
// until the date-normalization check parses it. TransactionID and Product
// are the identity of a record and must be present; everything else may
// be absent, absence being one of the defects the checks look for.
type Transaction struct {
	TransactionID   int64    `json:"transaction_id" validate:"required"`
	CustomerName    *string  `json:"customer_name,omitempty"`
	Product         string   `json:"product" validate:"required"`
	Price           *float64 `json:"price,omitempty"`
	Quantity        *int64   `json:"quantity,omitempty"`
	TransactionDate *string  `json:"transaction_date,omitempty"`
}

// SampleTransactions returns the built-in five-row dataset. It carries the
// defects the checks are meant to surface: a missing customer name, a
// missing quantity, a negative price, inconsistent name casing, and mixed
// or missing date formats.
func SampleTransactions() []Transaction {
	return []Transaction{
		{TransactionID: 101, CustomerName: strPtr("Jane Rust"), Product: "Laptop", Price: floatPtr(1200), Quantity: int64Ptr(1), TransactionDate: strPtr("2024-12-01")},
		{TransactionID: 102, CustomerName: strPtr("june young"), Product: "Phone", Price: floatPtr(800), Quantity: int64Ptr(2), TransactionDate: strPtr("2024/12/01")},
		{TransactionID: 103, CustomerName: strPtr("June Doe"), Product: "Laptop", Price: floatPtr(1200), Quantity: nil, TransactionDate: strPtr("01-12-2024")},
		{TransactionID: 104, CustomerName: nil, Product: "Tablet", Price: floatPtr(-300), Quantity: int64Ptr(1), TransactionDate: nil},
		{TransactionID: 105, CustomerName: strPtr("JANE RUST"), Product: "Phone", Price: floatPtr(850), Quantity: int64Ptr(1), TransactionDate: strPtr("2024-12-01")},
	}
}

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func floatPtr(f float64) *float64 { return &f }
