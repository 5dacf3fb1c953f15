package devserver

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"storefront/internal/domain"
)

// user is a fixture account. Login is refused until confirmed, mirroring the
// production backend's email-confirmation gate.
type user struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	UserType     string
	Confirmed    bool
}

// State is the in-memory backend state. Everything is fixture-seeded and
// mutated under one lock; the devserver exists for local dev and client
// integration tests, not for load.
type State struct {
	mu sync.Mutex

	users      []user
	categories []domain.Category
	products   []domain.Product
	carts      map[string][]domain.CartItem
	favorites  map[string]*domain.Favorite
	orders     map[string][]domain.Order
	coupons    []domain.Coupon
	commission []domain.CommissionRule
	shipping   []domain.ShippingRate
	profiles   map[string]domain.Profile
	addresses  map[string][]domain.Address
	bank       map[string][]domain.BankAccount
	problems   []domain.SupportProblem
}

// NewState seeds the fixture data.
func NewState() *State {
	s := &State{
		carts:     map[string][]domain.CartItem{},
		favorites: map[string]*domain.Favorite{},
		orders:    map[string][]domain.Order{},
		profiles:  map[string]domain.Profile{},
		addresses: map[string][]domain.Address{},
		bank:      map[string][]domain.BankAccount{},
	}
	s.seed()
	return s
}

func (s *State) seed() {
	buyer := user{
		ID:           uuid.NewString(),
		FirstName:    "Amina",
		LastName:     "Hassan",
		Email:        "buyer@example.com",
		PasswordHash: mustHash("Password1"),
		UserType:     "customer",
		Confirmed:    true,
	}
	pending := user{
		ID:           uuid.NewString(),
		FirstName:    "Omar",
		LastName:     "Said",
		Email:        "pending@example.com",
		PasswordHash: mustHash("Password1"),
		UserType:     "customer",
		Confirmed:    false,
	}
	s.users = []user{buyer, pending}
	s.profiles[buyer.ID] = domain.Profile{
		ID:        buyer.ID,
		FirstName: buyer.FirstName,
		LastName:  buyer.LastName,
		Email:     buyer.Email,
		UserType:  buyer.UserType,
	}

	electronics := uuid.NewString()
	fashion := uuid.NewString()
	home := uuid.NewString()
	phones := uuid.NewString()
	laptops := uuid.NewString()
	shoes := uuid.NewString()

	s.categories = []domain.Category{
		{ID: electronics, Name: "Electronics", NameEn: "Electronics", NameAr: "إلكترونيات", Children: []domain.Category{
			{ID: phones, Name: "Phones", NameEn: "Phones", NameAr: "هواتف", ParentID: &electronics},
			{ID: laptops, Name: "Laptops", NameEn: "Laptops", NameAr: "حواسيب محمولة", ParentID: &electronics},
		}},
		{ID: fashion, Name: "Fashion", NameEn: "Fashion", NameAr: "أزياء", Children: []domain.Category{
			{ID: shoes, Name: "Shoes", NameEn: "Shoes", NameAr: "أحذية", ParentID: &fashion},
		}},
		{ID: home, Name: "Home", NameEn: "Home", NameAr: "منزل"},
	}

	s.products = []domain.Product{
		fixtureProduct("Nova X2 Phone", 499, phones, "Nova", 12),
		fixtureProduct("Pulse 14 Laptop", 899, laptops, "Pulse", 5),
		fixtureProduct("Trail Runner Shoes", 79, shoes, "Stride", 30),
		fixtureProduct("Desk Lamp", 25, home, "Lumo", 40),
		fixtureProduct("Ceramic Mug Set", 18, home, "Lumo", 60),
	}

	s.coupons = []domain.Coupon{
		{Code: "WELCOME10", DiscountPercentage: 10, StartDate: isoDaysAgo(30), EndDate: isoDaysFrom(30), MinPurchase: 20, MaxPurchase: 500, IsActived: true},
		{Code: "SUMMER5", DiscountPercentage: 5, StartDate: isoDaysAgo(120), EndDate: isoDaysAgo(30), MinPurchase: 0, MaxPurchase: 100, IsExpired: true},
	}
	s.commission = []domain.CommissionRule{
		{ID: uuid.NewString(), UserType: "customer", LowerLimit: 1, UpperLimit: 100, Amount: 5, IsActive: true},
		{ID: uuid.NewString(), UserType: "wholesale", LowerLimit: 50, UpperLimit: 1000, Amount: 2, IsActive: false},
	}
	s.shipping = []domain.ShippingRate{
		{ID: uuid.NewString(), Name: "Standard", Price: 10, IsActive: true},
		{ID: uuid.NewString(), Name: "Express", Price: 25, IsActive: false},
	}
}

func fixtureProduct(title string, price float64, categoryID, brand string, qty int) domain.Product {
	return domain.Product{
		ID:    uuid.NewString(),
		Title: title,
		Price: domain.Price{
			Amount:       price,
			CurrencyCode: "USD",
			ConvertedPrices: []domain.ConvertedPrice{
				{CurrencyCode: "USD", Amount: price},
				{CurrencyCode: "SAR", Amount: price * 3.75},
			},
		},
		CategoryID: categoryID,
		Brand:      brand,
		VendorID:   "vendor-1",
		VendorName: "Souq Traders",
		Quantity:   qty,
	}
}

func (s *State) findUser(email string) (user, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.users {
		if strings.ToLower(u.Email) == email {
			return u, true
		}
	}
	return user{}, false
}

func (s *State) userByID(id string) (user, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return user{}, false
}

// flatCategories returns the roots followed by their children, the flat
// paginated shape the real backend serves.
func (s *State) flatCategories() []domain.Category {
	var flat []domain.Category
	for _, root := range s.categories {
		flat = append(flat, root)
		flat = append(flat, root.Children...)
	}
	return flat
}

func mustHash(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hashed)
}

func isoDaysAgo(days int) string {
	return time.Now().AddDate(0, 0, -days).UTC().Format(time.RFC3339)
}

func isoDaysFrom(days int) string {
	return time.Now().AddDate(0, 0, days).UTC().Format(time.RFC3339)
}
