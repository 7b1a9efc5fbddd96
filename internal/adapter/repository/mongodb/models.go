package mongodb

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
)

type listingDocument struct {
	ID            primitive.ObjectID      `bson:"_id,omitempty"`
	UserID        string                  `bson:"user_id"`
	CategoryID    string                  `bson:"category_id"`
	SubCategoryID string                  `bson:"sub_category_id,omitempty"`
	Title         string                  `bson:"title"`
	Description   string                  `bson:"description"`
	City          string                  `bson:"city"`
	Price         float64                 `bson:"price"`
	Brand         string                  `bson:"brand,omitempty"`
	Condition     domain.ListingCondition `bson:"condition,omitempty"`
	Photos        []string                `bson:"photos,omitempty"`
	Views         int64                   `bson:"views"`
	IsActive      bool                    `bson:"is_active"`
	PublishedAt   time.Time               `bson:"published_at"`
	CreatedAt     time.Time               `bson:"created_at"`
	UpdatedAt     time.Time               `bson:"updated_at"`
}

type attributeDefinitionDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	CategoryID  string             `bson:"category_id"`
	Name        string             `bson:"name"`
	ValueType   domain.ValueType   `bson:"value_type"`
	Options     []string           `bson:"options,omitempty"`
	Required    bool               `bson:"required"`
	Order       int                `bson:"order"`
	Placeholder string             `bson:"placeholder,omitempty"`
	Description string             `bson:"description,omitempty"`
	IsActive    bool               `bson:"is_active"`
	DateFormat  domain.DateFormat  `bson:"date_format,omitempty"`
	MinDate     *time.Time         `bson:"min_date,omitempty"`
	MaxDate     *time.Time         `bson:"max_date,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

// attributeValueDocument stores the tagged union as a kind discriminator plus
// a value field holding the native BSON type for that kind.
type attributeValueDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ListingID   string             `bson:"listing_id"`
	AttributeID string             `bson:"attribute_id"`
	Kind        domain.ValueKind   `bson:"kind"`
	Value       interface{}        `bson:"value"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

type categoryDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Icon      string             `bson:"icon,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

type subCategoryDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	CategoryID string             `bson:"category_id"`
	Name       string             `bson:"name"`
	Icon       string             `bson:"icon,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

type favoriteDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	ListingID string             `bson:"listing_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Role      domain.UserRole    `bson:"role"`
	City      string             `bson:"city,omitempty"`
	IsActive  bool               `bson:"is_active"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

type sellerRequestDocument struct {
	ID         primitive.ObjectID         `bson:"_id,omitempty"`
	UserID     string                     `bson:"user_id"`
	Message    string                     `bson:"message,omitempty"`
	Status     domain.SellerRequestStatus `bson:"status"`
	ReviewedBy string                     `bson:"reviewed_by,omitempty"`
	ReviewedAt *time.Time                 `bson:"reviewed_at,omitempty"`
	CreatedAt  time.Time                  `bson:"created_at"`
	UpdatedAt  time.Time                  `bson:"updated_at"`
}

func objectIDFromDomain(id, what string) (primitive.ObjectID, error) {
	if id == "" {
		return primitive.NilObjectID, nil
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid %s ID %q: %w", what, id, err)
	}
	return oid, nil
}

func toListingDocument(l *domain.Listing) (*listingDocument, error) {
	oid, err := objectIDFromDomain(l.ID, "listing")
	if err != nil {
		return nil, err
	}
	return &listingDocument{
		ID:            oid,
		UserID:        l.UserID,
		CategoryID:    l.CategoryID,
		SubCategoryID: l.SubCategoryID,
		Title:         l.Title,
		Description:   l.Description,
		City:          l.City,
		Price:         l.Price,
		Brand:         l.Brand,
		Condition:     l.Condition,
		Photos:        l.Photos,
		Views:         l.Views,
		IsActive:      l.IsActive,
		PublishedAt:   l.PublishedAt,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}, nil
}

func toDomainListing(d *listingDocument) *domain.Listing {
	if d == nil {
		return nil
	}
	return &domain.Listing{
		ID:            d.ID.Hex(),
		UserID:        d.UserID,
		CategoryID:    d.CategoryID,
		SubCategoryID: d.SubCategoryID,
		Title:         d.Title,
		Description:   d.Description,
		City:          d.City,
		Price:         d.Price,
		Brand:         d.Brand,
		Condition:     d.Condition,
		Photos:        d.Photos,
		Views:         d.Views,
		IsActive:      d.IsActive,
		PublishedAt:   d.PublishedAt,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func toDomainListings(docs []*listingDocument) []*domain.Listing {
	listings := make([]*domain.Listing, 0, len(docs))
	for _, doc := range docs {
		listings = append(listings, toDomainListing(doc))
	}
	return listings
}

func toAttributeDefinitionDocument(def *domain.AttributeDefinition) (*attributeDefinitionDocument, error) {
	oid, err := objectIDFromDomain(def.ID, "attribute definition")
	if err != nil {
		return nil, err
	}
	return &attributeDefinitionDocument{
		ID:          oid,
		CategoryID:  def.CategoryID,
		Name:        def.Name,
		ValueType:   def.ValueType,
		Options:     def.Options,
		Required:    def.Required,
		Order:       def.Order,
		Placeholder: def.Placeholder,
		Description: def.Description,
		IsActive:    def.IsActive,
		DateFormat:  def.DateFormat,
		MinDate:     def.MinDate,
		MaxDate:     def.MaxDate,
		CreatedAt:   def.CreatedAt,
		UpdatedAt:   def.UpdatedAt,
	}, nil
}

func toDomainAttributeDefinition(d *attributeDefinitionDocument) *domain.AttributeDefinition {
	if d == nil {
		return nil
	}
	return &domain.AttributeDefinition{
		ID:          d.ID.Hex(),
		CategoryID:  d.CategoryID,
		Name:        d.Name,
		ValueType:   d.ValueType,
		Options:     d.Options,
		Required:    d.Required,
		Order:       d.Order,
		Placeholder: d.Placeholder,
		Description: d.Description,
		IsActive:    d.IsActive,
		DateFormat:  d.DateFormat,
		MinDate:     d.MinDate,
		MaxDate:     d.MaxDate,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toAttributeValueDocument(v *domain.AttributeValue) (*attributeValueDocument, error) {
	oid, err := objectIDFromDomain(v.ID, "attribute value")
	if err != nil {
		return nil, err
	}
	doc := &attributeValueDocument{
		ID:          oid,
		ListingID:   v.ListingID,
		AttributeID: v.AttributeID,
		Kind:        v.Value.Kind,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
	switch v.Value.Kind {
	case domain.KindNumber:
		doc.Value = v.Value.Num
	case domain.KindBoolean:
		doc.Value = v.Value.Bool
	case domain.KindDate:
		doc.Value = v.Value.Time
	case domain.KindString:
		doc.Value = v.Value.Str
	default:
		return nil, fmt.Errorf("attribute value has unknown kind %q", v.Value.Kind)
	}
	return doc, nil
}

func toDomainAttributeValue(d *attributeValueDocument) (*domain.AttributeValue, error) {
	if d == nil {
		return nil, nil
	}
	value := domain.TypedValue{Kind: d.Kind}
	switch d.Kind {
	case domain.KindNumber:
		switch n := d.Value.(type) {
		case float64:
			value.Num = n
		case int32:
			value.Num = float64(n)
		case int64:
			value.Num = float64(n)
		default:
			return nil, fmt.Errorf("attribute value %s: expected numeric payload, got %T", d.ID.Hex(), d.Value)
		}
	case domain.KindBoolean:
		b, ok := d.Value.(bool)
		if !ok {
			return nil, fmt.Errorf("attribute value %s: expected boolean payload, got %T", d.ID.Hex(), d.Value)
		}
		value.Bool = b
	case domain.KindDate:
		switch t := d.Value.(type) {
		case primitive.DateTime:
			value.Time = t.Time().UTC()
		case time.Time:
			value.Time = t.UTC()
		default:
			return nil, fmt.Errorf("attribute value %s: expected date payload, got %T", d.ID.Hex(), d.Value)
		}
	default:
		s, ok := d.Value.(string)
		if !ok {
			return nil, fmt.Errorf("attribute value %s: expected string payload, got %T", d.ID.Hex(), d.Value)
		}
		value.Str = s
	}
	return &domain.AttributeValue{
		ID:          d.ID.Hex(),
		ListingID:   d.ListingID,
		AttributeID: d.AttributeID,
		Value:       value,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

func toDomainCategory(d *categoryDocument) *domain.Category {
	if d == nil {
		return nil
	}
	return &domain.Category{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Icon:      d.Icon,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toDomainSubCategory(d *subCategoryDocument) *domain.SubCategory {
	if d == nil {
		return nil
	}
	return &domain.SubCategory{
		ID:         d.ID.Hex(),
		CategoryID: d.CategoryID,
		Name:       d.Name,
		Icon:       d.Icon,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func toDomainFavorite(d *favoriteDocument) *domain.Favorite {
	if d == nil {
		return nil
	}
	return &domain.Favorite{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		ListingID: d.ListingID,
		CreatedAt: d.CreatedAt,
	}
}

func toDomainUser(d *userDocument) *domain.User {
	if d == nil {
		return nil
	}
	return &domain.User{
		ID:        d.ID.Hex(),
		Username:  d.Username,
		Email:     d.Email,
		Password:  d.Password,
		Role:      d.Role,
		City:      d.City,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toDomainSellerRequest(d *sellerRequestDocument) *domain.SellerRequest {
	if d == nil {
		return nil
	}
	return &domain.SellerRequest{
		ID:         d.ID.Hex(),
		UserID:     d.UserID,
		Message:    d.Message,
		Status:     d.Status,
		ReviewedBy: d.ReviewedBy,
		ReviewedAt: d.ReviewedAt,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
