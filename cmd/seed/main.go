package main

import (
	"context"
	"log"
	"time"

	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	db, err := database.Connect("hotelbooking.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM availability_blocks")
	db.Exec("DELETE FROM room_rates")
	db.Exec("DELETE FROM room_types")
	db.Exec("DELETE FROM hotels")
	db.Exec("DELETE FROM translations")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	hotels := repository.NewHotelRepository(db)
	roomTypes := repository.NewRoomTypeRepository(db)
	rates := repository.NewRoomRateRepository(db)
	blocks := repository.NewAvailabilityBlockRepository(db)
	bookings := repository.NewBookingRepository(db)
	translations := repository.NewTranslationRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	admin := mustUser(ctx, users, "admin@hotelbooking.ph", "admin123", domain.RoleAdmin, "Admin")
	owner := mustUser(ctx, users, "owner@hotelbooking.ph", "owner123", domain.RoleHotelOwner, "Hotel Owner")
	guest := mustUser(ctx, users, "guest@hotelbooking.ph", "guest123", domain.RoleGuest, "Guest One")
	mustUser(ctx, users, "guest2@hotelbooking.ph", "guest123", domain.RoleGuest, "Guest Two")
	log.Println("Admin created:", admin.Email, "/ admin123")

	// ================== HOTELS ==================
	log.Println("Creating hotels...")

	seaside := &domain.Hotel{
		OwnerID:     owner.ID,
		Name:        "Seaside Palms Resort",
		Description: "Beachfront resort with pool and dive center",
		Address:     "1 Beach Road",
		City:        "Cebu",
		Country:     "PH",
		IsActive:    true,
	}
	if err := hotels.Create(ctx, seaside); err != nil {
		log.Fatal(err)
	}

	cityInn := &domain.Hotel{
		OwnerID:     owner.ID,
		Name:        "Citylight Inn",
		Description: "Budget rooms near the business district",
		Address:     "88 Ayala Ave",
		City:        "Manila",
		Country:     "PH",
		IsActive:    true,
	}
	if err := hotels.Create(ctx, cityInn); err != nil {
		log.Fatal(err)
	}

	// ================== ROOM TYPES ==================
	log.Println("Creating room types...")

	deluxe := &domain.RoomType{
		HotelID:        seaside.ID,
		Name:           "Deluxe Ocean View",
		Capacity:       2,
		AvailableRooms: 5,
		BasePrice:      decimal.NewFromInt(1000),
		Amenities:      []string{"aircon", "wifi", "balcony"},
	}
	family := &domain.RoomType{
		HotelID:        seaside.ID,
		Name:           "Family Suite",
		Capacity:       4,
		AvailableRooms: 3,
		BasePrice:      decimal.NewFromInt(2500),
		Amenities:      []string{"aircon", "wifi", "kitchenette"},
	}
	standard := &domain.RoomType{
		HotelID:        cityInn.ID,
		Name:           "Standard Twin",
		Capacity:       2,
		AvailableRooms: 10,
		BasePrice:      decimal.NewFromInt(750),
	}
	for _, rt := range []*domain.RoomType{deluxe, family, standard} {
		if err := roomTypes.Create(ctx, rt); err != nil {
			log.Fatal(err)
		}
	}

	// ================== RATES & BLOCKS ==================
	log.Println("Creating weekend rates and a maintenance block...")

	today := time.Now().UTC().Truncate(24 * time.Hour)
	daysToSat := (int(time.Saturday) - int(today.Weekday()) + 7) % 7
	if daysToSat == 0 {
		daysToSat = 7
	}
	nextSaturday := today.AddDate(0, 0, daysToSat)
	weekend := []time.Time{nextSaturday, nextSaturday.AddDate(0, 0, 1)}
	if err := rates.BulkUpsert(ctx, deluxe.ID, weekend, decimal.NewFromInt(1400), nil); err != nil {
		log.Fatal(err)
	}

	blockStart := today.AddDate(0, 1, 0)
	if err := blocks.Create(ctx, &domain.AvailabilityBlock{
		RoomTypeID: &family.ID,
		StartDate:  blockStart,
		EndDate:    blockStart.AddDate(0, 0, 6),
		BlockType:  domain.BlockMaintenance,
		Reason:     "annual aircon overhaul",
	}); err != nil {
		log.Fatal(err)
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")

	checkIn := today.AddDate(0, 0, 7)
	checkOut := checkIn.AddDate(0, 0, 2)
	b := &domain.Booking{
		HotelID:       seaside.ID,
		RoomTypeID:    deluxe.ID,
		UserID:        guest.ID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        2,
		TotalPrice:    decimal.NewFromInt(2000),
		Status:        domain.BookingConfirmed,
		PaymentStatus: domain.PaymentUnpaid,
	}
	if err := bookings.Create(ctx, b); err != nil {
		log.Fatal(err)
	}

	// ================== TRANSLATIONS ==================
	for _, t := range []domain.Translation{
		{Locale: "en", Key: "search.sold_out", Value: "Sold out"},
		{Locale: "en", Key: "search.closed", Value: "No rates for these dates"},
		{Locale: "fil", Key: "search.sold_out", Value: "Ubos na"},
	} {
		t := t
		if err := translations.Upsert(ctx, &t); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Seed complete.")
}

func mustUser(ctx context.Context, users *repository.UserRepository, email, password string, role domain.UserRole, name string) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	u := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Name:         name,
		IsActive:     true,
	}
	if err := users.Create(ctx, u); err != nil {
		log.Fatal(err)
	}
	return u
}
