package domain

import "time"

type User struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	Phone        string    `db:"phone" json:"phone,omitempty"`
	Address      string    `db:"address" json:"address,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

type MenuItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Type         string `json:"type"`
	DayOfWeek    string `json:"dayOfWeek"`
	IsVegetarian bool   `json:"isVegetarian"`
	ImageURL     string `json:"imageUrl,omitempty"`
}

type SubscriptionPlan struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	DurationDays int     `json:"durationDays"`
	Price        float64 `json:"price"`
	Description  string  `json:"description,omitempty"`
}

// Mess is a provider's catalog entry. The menu and plans collections live in
// jsonb columns so every mutation stays a single-row update.
type Mess struct {
	ID            string             `db:"id" json:"id"`
	ProviderID    string             `db:"provider_id" json:"provider"`
	Name          string             `db:"name" json:"name"`
	Description   string             `db:"description" json:"description,omitempty"`
	Address       string             `db:"address" json:"address,omitempty"`
	CuisineTypes  []string           `db:"cuisine_types" json:"cuisineTypes,omitempty"`
	PricePerMeal  float64            `db:"price_per_meal" json:"pricePerMeal"`
	ImageURL      string             `db:"image_url" json:"imageUrl,omitempty"`
	RatingAverage float64            `db:"rating_average" json:"ratingAverage"`
	IsActive      bool               `db:"is_active" json:"isActive"`
	Menu          []MenuItem         `db:"menu" json:"menu"`
	Plans         []SubscriptionPlan `db:"plans" json:"subscriptionPlans"`
	CreatedAt     time.Time          `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `db:"updated_at" json:"updatedAt"`
}

// MessFilter narrows the public catalog listing.
type MessFilter struct {
	Query    string
	MinPrice float64
	MaxPrice float64
}

func (f MessFilter) Empty() bool {
	return f.Query == "" && f.MinPrice == 0 && f.MaxPrice == 0
}

func (m *Mess) Plan(id string) *SubscriptionPlan {
	for i := range m.Plans {
		if m.Plans[i].ID == id {
			return &m.Plans[i]
		}
	}
	return nil
}

type AbsenceEntry struct {
	ID     string        `json:"id"`
	Date   time.Time     `json:"date"`
	Reason string        `json:"reason,omitempty"`
	Status AbsenceStatus `json:"status"`
}

// Order is one customer's subscription instance against one Mess.
// pricePerMeal is snapshotted from the Mess at creation time.
type Order struct {
	ID                    string         `db:"id" json:"id"`
	CustomerID            string         `db:"customer_id" json:"customer"`
	MessID                string         `db:"mess_id" json:"mess"`
	Quantity              int            `db:"quantity" json:"quantity"`
	PricePerMeal          float64        `db:"price_per_meal" json:"pricePerMeal"`
	TotalPrice            float64        `db:"total_price" json:"totalPrice"`
	AmountPaid            float64        `db:"amount_paid" json:"amountPaid"`
	AmountDue             float64        `db:"amount_due" json:"amountDue"`
	Status                OrderStatus    `db:"status" json:"status"`
	PaymentStatus         PaymentStatus  `db:"payment_status" json:"paymentStatus"`
	Notes                 string         `db:"notes" json:"notes,omitempty"`
	SubscriptionPlanID    *string        `db:"subscription_plan_id" json:"subscriptionPlanId,omitempty"`
	SubscriptionStartDate *time.Time     `db:"subscription_start_date" json:"subscriptionStartDate,omitempty"`
	SubscriptionEndDate   *time.Time     `db:"subscription_end_date" json:"subscriptionEndDate,omitempty"`
	TotalDays             int            `db:"total_days" json:"totalDays"`
	DaysRemaining         int            `db:"days_remaining" json:"daysRemaining"`
	AbsenceDates          []AbsenceEntry `db:"absence_dates" json:"absenceDates"`
	CreatedAt             time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt             time.Time      `db:"updated_at" json:"updatedAt"`
}

func (o *Order) Absence(id string) *AbsenceEntry {
	for i := range o.AbsenceDates {
		if o.AbsenceDates[i].ID == id {
			return &o.AbsenceDates[i]
		}
	}
	return nil
}

type Notification struct {
	ID        string                 `db:"id" json:"id"`
	UserID    string                 `db:"user_id" json:"user"`
	Title     string                 `db:"title" json:"title"`
	Message   string                 `db:"message" json:"message"`
	Read      bool                   `db:"read" json:"read"`
	Metadata  map[string]interface{} `db:"metadata" json:"metadata,omitempty"`
	CreatedAt time.Time              `db:"created_at" json:"createdAt"`
}
