package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/destinity-erp/internal/domain/entity"
)

type employeeDoc struct {
	Role       string  `bson:"role"`
	Department string  `bson:"department"`
	Salary     float64 `bson:"salary"`
}

type providerDoc struct {
	Company     string `bson:"company"`
	ServiceType string `bson:"serviceType"`
	Phone       string `bson:"phone"`
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FirstName    string             `bson:"firstName"`
	LastName     string             `bson:"lastName"`
	MiddleName   string             `bson:"middleName"`
	Email        string             `bson:"email"`
	Password     string             `bson:"password"`
	UserType     string             `bson:"userType"`
	Status       string             `bson:"status"`
	EmployeeData *employeeDoc       `bson:"employeeData,omitempty"`
	ProviderData *providerDoc       `bson:"providerData,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func toUserDoc(u *entity.User) (*userDoc, error) {
	oid, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		return nil, err
	}
	doc := &userDoc{
		ID:         oid,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		MiddleName: u.MiddleName,
		Email:      u.Email,
		Password:   u.PasswordHash,
		UserType:   u.UserType(),
		Status:     u.Status,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
	switch d := u.Details.(type) {
	case *entity.EmployeeData:
		doc.EmployeeData = &employeeDoc{Role: d.Role, Department: d.Department, Salary: d.Salary}
	case *entity.ProviderData:
		doc.ProviderData = &providerDoc{Company: d.Company, ServiceType: d.ServiceType, Phone: d.Phone}
	}
	return doc, nil
}

// toEntity reconstruye la unión: si por datos heredados vienen ambos
// subdocumentos, gana el que indica userType.
func (d *userDoc) toEntity() *entity.User {
	u := &entity.User{
		ID:           d.ID.Hex(),
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		MiddleName:   d.MiddleName,
		Email:        d.Email,
		PasswordHash: d.Password,
		Status:       d.Status,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	emp := func() entity.UserDetails {
		return &entity.EmployeeData{Role: d.EmployeeData.Role, Department: d.EmployeeData.Department, Salary: d.EmployeeData.Salary}
	}
	prov := func() entity.UserDetails {
		return &entity.ProviderData{Company: d.ProviderData.Company, ServiceType: d.ProviderData.ServiceType, Phone: d.ProviderData.Phone}
	}
	switch {
	case d.EmployeeData != nil && (d.ProviderData == nil || d.UserType != entity.UserTypeProvider):
		u.Details = emp()
	case d.ProviderData != nil:
		u.Details = prov()
	}
	return u
}

type productDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Price       float64            `bson:"price"`
	Stock       int64              `bson:"stock"`
	Category    string             `bson:"category"`
	Description string             `bson:"description"`
	Image       string             `bson:"image"`
	Provider    string             `bson:"provider"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func toProductDoc(p *entity.Product) (*productDoc, error) {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return nil, err
	}
	return &productDoc{
		ID:          oid,
		Name:        p.Name,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		Description: p.Description,
		Image:       p.Image,
		Provider:    p.Provider,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

func (d *productDoc) toEntity() *entity.Product {
	return &entity.Product{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Price:       d.Price,
		Stock:       d.Stock,
		Category:    d.Category,
		Description: d.Description,
		Image:       d.Image,
		Provider:    d.Provider,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type customerInfoDoc struct {
	ID    string `bson:"id"`
	Name  string `bson:"name"`
	Email string `bson:"email"`
}

type productSoldDoc struct {
	ID       string  `bson:"id"`
	Name     string  `bson:"name"`
	Price    float64 `bson:"price"`
	Quantity int64   `bson:"quantity"`
	SubTotal float64 `bson:"subTotal"`
}

type saleDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	CustomerInfo  customerInfoDoc    `bson:"customerInfo"`
	ProductSold   productSoldDoc     `bson:"productSold"`
	PaymentMethod string             `bson:"paymentMethod"`
	TotalAmount   float64            `bson:"totalAmount"`
	Status        string             `bson:"status"`
	SaleDate      time.Time          `bson:"saleDate"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

func toSaleDoc(s *entity.Sale) (*saleDoc, error) {
	oid, err := primitive.ObjectIDFromHex(s.ID)
	if err != nil {
		return nil, err
	}
	return &saleDoc{
		ID:            oid,
		CustomerInfo:  customerInfoDoc(s.CustomerInfo),
		ProductSold:   productSoldDoc(s.ProductSold),
		PaymentMethod: s.PaymentMethod,
		TotalAmount:   s.TotalAmount,
		Status:        s.Status,
		SaleDate:      s.SaleDate,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}, nil
}

func (d *saleDoc) toEntity() *entity.Sale {
	return &entity.Sale{
		ID:            d.ID.Hex(),
		CustomerInfo:  entity.CustomerInfo(d.CustomerInfo),
		ProductSold:   entity.ProductSold(d.ProductSold),
		PaymentMethod: d.PaymentMethod,
		TotalAmount:   d.TotalAmount,
		Status:        d.Status,
		SaleDate:      d.SaleDate,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
