// Package models declares the wire shapes of the bookstore backend API.
// Resource clients decode responses into these types at the boundary so the
// rest of the gateway never touches untyped JSON.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role values the backend assigns to accounts.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Book is the catalog entity, including its denormalized relations.
type Book struct {
	BookID          int             `json:"bookId"`
	Title           string          `json:"title"`
	ISBN            string          `json:"isbn,omitempty"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	StockQuantity   int             `json:"stockQuantity"`
	PublicationYear int             `json:"publicationYear,omitempty"`
	CoverImageURL   string          `json:"coverImageUrl,omitempty"`
	Category        *Category       `json:"category,omitempty"`
	Author          *Author         `json:"author,omitempty"`
	Publisher       *Publisher      `json:"publisher,omitempty"`
	Reviews         []Review        `json:"reviews,omitempty"`
	CreatedAt       time.Time       `json:"createdAt,omitzero"`
	UpdatedAt       time.Time       `json:"updatedAt,omitzero"`
}

type Category struct {
	CategoryID  int    `json:"categoryId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Author struct {
	AuthorID int    `json:"authorId"`
	Name     string `json:"name"`
	Bio      string `json:"bio,omitempty"`
}

type Publisher struct {
	PublisherID int    `json:"publisherId"`
	Name        string `json:"name"`
	ContactInfo string `json:"contactInfo,omitempty"`
}

type User struct {
	UserID        int       `json:"userId"`
	FullName      string    `json:"fullName"`
	Email         string    `json:"email"`
	PhoneNumber   string    `json:"phoneNumber,omitempty"`
	Address       string    `json:"address,omitempty"`
	Role          string    `json:"role"`
	AccountStatus string    `json:"accountStatus,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitzero"`
}

type Order struct {
	OrderID            int             `json:"orderId"`
	UserID             int             `json:"userId"`
	OrderDate          time.Time       `json:"orderDate,omitzero"`
	Status             string          `json:"status"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	ShippingAddress    string          `json:"shippingAddress"`
	CancellationReason string          `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time       `json:"createdAt,omitzero"`
	UpdatedAt          time.Time       `json:"updatedAt,omitzero"`
}

type OrderDetail struct {
	DetailID  int             `json:"detailId"`
	OrderID   int             `json:"orderId"`
	BookID    int             `json:"bookId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type Payment struct {
	PaymentID     int             `json:"paymentId"`
	OrderID       int             `json:"orderId"`
	PaymentDate   time.Time       `json:"paymentDate,omitzero"`
	PaymentMethod string          `json:"paymentMethod"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transactionId,omitempty"`
	Status        string          `json:"status"`
}

type Review struct {
	ReviewID  int       `json:"reviewId"`
	User      *User     `json:"user,omitempty"`
	Book      *Book     `json:"book,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// Credentials is the successful login/register payload.
type Credentials struct {
	Success  bool   `json:"success"`
	Token    string `json:"token"`
	UserID   int    `json:"userId"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Error    string `json:"error,omitempty"`
}

// DashboardStats mirrors the admin statistics endpoint.
type DashboardStats struct {
	Users struct {
		Total     int `json:"total"`
		Admins    int `json:"admins"`
		Customers int `json:"customers"`
	} `json:"users"`
	Books struct {
		Total int `json:"total"`
	} `json:"books"`
	Orders struct {
		Total     int `json:"total"`
		Pending   int `json:"pending"`
		Completed int `json:"completed"`
	} `json:"orders"`
	Revenue struct {
		Total    decimal.Decimal `json:"total"`
		Currency string          `json:"currency"`
	} `json:"revenue"`
	Payments struct {
		Completed int `json:"completed"`
	} `json:"payments"`
	Reviews struct {
		Total         int     `json:"total"`
		AverageRating float64 `json:"averageRating"`
	} `json:"reviews"`
}

// SalesReport mirrors the admin report endpoint for a date range.
type SalesReport struct {
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	TotalOrders     int             `json:"totalOrders"`
	TotalUsers      int             `json:"totalUsers"`
	TotalBooks      int             `json:"totalBooks"`
	CompletedOrders int             `json:"completedOrders"`
	PendingOrders   int             `json:"pendingOrders"`
	ShippedOrders   int             `json:"shippedOrders"`
	DailyRevenue    []DailyRevenue  `json:"dailyRevenue"`
	DailyOrders     []DailyOrders   `json:"dailyOrders"`
	TopCategories   []CategorySales `json:"topCategories"`
}

type DailyRevenue struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

type DailyOrders struct {
	Date   string `json:"date"`
	Orders int    `json:"orders"`
}

type CategorySales struct {
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// UploadedImage is the image service's upload response.
type UploadedImage struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId,omitempty"`
}

// VNPayURL is the payment gateway redirect returned by the backend.
type VNPayURL struct {
	PaymentURL string `json:"paymentUrl"`
}
