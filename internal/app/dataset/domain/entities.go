package domain

import (
	"fmt"
	"time"
)

// Supplier is a row of the proveedores table.
type Supplier struct {
	ID   int64
	Name string
}

// NewSupplier validates and creates a Supplier.
func NewSupplier(id int64, name string) (*Supplier, error) {
	if id < 1 {
		return nil, ErrInvalidID
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Supplier{ID: id, Name: name}, nil
}

// Customer is a row of the clientes table.
type Customer struct {
	ID          int64
	CompanyName string
}

// NewCustomer validates and creates a Customer.
func NewCustomer(id int64, companyName string) (*Customer, error) {
	if id < 1 {
		return nil, ErrInvalidID
	}
	if companyName == "" {
		return nil, ErrEmptyName
	}
	return &Customer{ID: id, CompanyName: companyName}, nil
}

// Product is a row of the productos table.
type Product struct {
	ID          int64
	Description string
	Color       string
	Status      int64
	Price       Money
	SupplierID  int64
}

// NewProduct validates and creates a Product.
func NewProduct(id int64, description, color string, status int64, price Money, supplierID int64) (*Product, error) {
	if id < 1 || supplierID < 1 {
		return nil, ErrInvalidID
	}
	if status != 0 && status != 1 {
		return nil, ErrInvalidStatus
	}
	if !price.GreaterThan(NewMoneyFromCents(0)) {
		return nil, ErrInvalidPrice
	}
	if !price.IsRounded() {
		return nil, fmt.Errorf("product %d price %s: %w", id, price.Decimal(), ErrUnroundedAmount)
	}
	return &Product{
		ID:          id,
		Description: description,
		Color:       color,
		Status:      status,
		Price:       price,
		SupplierID:  supplierID,
	}, nil
}

// Sale is a row of the ventas table. Tax and Total are derived from Net.
type Sale struct {
	ID            int64
	Date          time.Time
	CustomerID    int64
	InvoiceNumber int64
	Net           Money
	Tax           Money
	Total         Money
}

// NewSale validates the inputs and derives tax and total with the calculator.
func NewSale(id int64, date time.Time, customerID, invoiceNumber int64, net Money, calc *TaxCalculator) (*Sale, error) {
	if id < 1 || customerID < 1 {
		return nil, ErrInvalidID
	}
	if invoiceNumber < 0 {
		return nil, ErrInvalidInvoice
	}
	if !net.GreaterThan(NewMoneyFromCents(0)) {
		return nil, ErrInvalidPrice
	}
	net = net.Round()
	tax, total := calc.Calculate(net)
	return &Sale{
		ID:            id,
		Date:          date,
		CustomerID:    customerID,
		InvoiceNumber: invoiceNumber,
		Net:           net,
		Tax:           tax,
		Total:         total,
	}, nil
}

// DateString returns the sale date in DateLayout.
func (s *Sale) DateString() string {
	return s.Date.Format(DateLayout)
}

// SaleLine is a row of the ventas_detalle table.
type SaleLine struct {
	ID        int64
	SaleID    int64
	ProductID int64
	Quantity  int64
	UnitPrice Money
	UnitCost  Money
}

// NewSaleLine validates and creates a SaleLine.
func NewSaleLine(id, saleID, productID, quantity int64, unitPrice, unitCost Money) (*SaleLine, error) {
	if id < 1 || saleID < 1 || productID < 1 {
		return nil, ErrInvalidID
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if !unitPrice.GreaterThan(NewMoneyFromCents(0)) {
		return nil, ErrInvalidPrice
	}
	if !unitPrice.IsRounded() || !unitCost.IsRounded() {
		return nil, ErrUnroundedAmount
	}
	if unitCost.GreaterThan(unitPrice) {
		return nil, ErrCostAbovePrice
	}
	return &SaleLine{
		ID:        id,
		SaleID:    saleID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		UnitCost:  unitCost,
	}, nil
}
