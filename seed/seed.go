// Package seed, boş veritabanına başlangıç verisi yükler.
//
// İlk kurulumda uygulamanın boş bir katalogla açılmaması için
// örnek membership'ler, kullanıcılar ve perk'ler eklenir.
// Katalogda zaten membership varsa seed hiçbir şey yapmaz.
package seed

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/akinalp/perkmanager/models"
	"github.com/akinalp/perkmanager/repository"
)

// bcryptCost, seed kullanıcı şifreleri için hash maliyeti.
// services.AuthService ile aynı değer.
const bcryptCost = 12

type seedUser struct {
	username    string
	email       string
	memberships []string // membership isimleri
}

type seedPerk struct {
	title       string
	description string
	product     string
	membership  string
	upvotes     int
	downvotes   int
	expiryIn    int // ay cinsinden; 0 = süresiz
	location    string
}

// Run, veritabanı boşsa başlangıç verisini yükler.
// Membership sayısı > 0 ise daha önce seed edilmiş demektir, no-op.
func Run(
	ctx context.Context,
	userRepo repository.UserRepository,
	membershipRepo repository.MembershipRepository,
	umRepo repository.UserMembershipRepository,
	perkRepo repository.PerkRepository,
) error {
	count, err := membershipRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: failed to count memberships: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("[seed] empty database, loading sample data")

	memberships := map[string]int64{}
	for _, name := range []string{"Visa", "Mastercard", "CAA", "StudentID", "Costco"} {
		m := &models.Membership{Name: name}
		if err := membershipRepo.Create(ctx, m); err != nil {
			return fmt.Errorf("seed: failed to create membership %q: %w", name, err)
		}
		memberships[name] = m.ID
	}

	// Tüm seed kullanıcıları aynı şifreyle açılır — demo amaçlı.
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcryptCost)
	if err != nil {
		return fmt.Errorf("seed: failed to hash password: %w", err)
	}

	users := []seedUser{
		{username: "admin", email: "admin@perkmanager.local",
			memberships: []string{"Visa", "Mastercard", "CAA", "StudentID", "Costco"}},
		{username: "student", email: "student@perkmanager.local",
			memberships: []string{"StudentID", "Visa"}},
		{username: "parent", email: "parent@perkmanager.local",
			memberships: []string{"Costco", "CAA"}},
	}

	for _, su := range users {
		u := &models.User{
			Username:     su.username,
			Email:        su.email,
			PasswordHash: string(hash),
		}
		if err := userRepo.Create(ctx, u); err != nil {
			return fmt.Errorf("seed: failed to create user %q: %w", su.username, err)
		}

		ids := make([]int64, 0, len(su.memberships))
		for _, name := range su.memberships {
			ids = append(ids, memberships[name])
		}
		if err := umRepo.ReplaceForUser(ctx, u.ID, ids); err != nil {
			return fmt.Errorf("seed: failed to set memberships for %q: %w", su.username, err)
		}
	}

	perks := []seedPerk{
		{title: "10% off movie tickets", description: "Discount at participating theatres with your card.",
			product: "Cineplex", membership: "Visa", upvotes: 14, downvotes: 2, expiryIn: 6, location: "Canada"},
		{title: "Free checked bag", description: "One free checked bag on domestic flights.",
			product: "Air Canada", membership: "Visa", upvotes: 22, downvotes: 5, expiryIn: 12, location: "Canada"},
		{title: "Airport lounge access", description: "Two complimentary lounge visits per year.",
			product: "DragonPass", membership: "Visa", upvotes: 31, downvotes: 3, location: "Global"},
		{title: "5% cashback on groceries", description: "Cashback on grocery purchases up to a monthly cap.",
			product: "Groceries", membership: "Mastercard", upvotes: 40, downvotes: 8, location: "Global"},
		{title: "Extended warranty", description: "Doubles the manufacturer warranty up to one extra year.",
			product: "Electronics", membership: "Mastercard", upvotes: 12, downvotes: 1, location: "Global"},
		{title: "Price protection", description: "Refunds the difference if the price drops within 60 days.",
			product: "Retail", membership: "Mastercard", upvotes: 9, downvotes: 4, expiryIn: 3, location: "Canada"},
		{title: "Free roadside assistance", description: "Towing and battery boost included with membership.",
			product: "Roadside", membership: "CAA", upvotes: 27, downvotes: 2, location: "Canada"},
		{title: "Hotel discounts", description: "Up to 20% off at partner hotel chains.",
			product: "Hotels", membership: "CAA", upvotes: 18, downvotes: 6, expiryIn: 9, location: "Global"},
		{title: "10% off car rentals", description: "Discount with partner rental agencies.",
			product: "Car rental", membership: "CAA", upvotes: 11, downvotes: 3, location: "Global"},
		{title: "Attraction tickets", description: "Reduced admission to museums and parks.",
			product: "Attractions", membership: "CAA", upvotes: 7, downvotes: 1, expiryIn: 4, location: "Ottawa, ON"},
		{title: "Half-price transit pass", description: "Monthly transit pass at student rate.",
			product: "OC Transpo", membership: "StudentID", upvotes: 33, downvotes: 2, location: "Ottawa, ON"},
		{title: "Free museum Thursdays", description: "Free admission on Thursday evenings with student card.",
			product: "Museums", membership: "StudentID", upvotes: 21, downvotes: 0, location: "Ottawa, ON"},
		{title: "Software discounts", description: "Up to 60% off select software licences.",
			product: "Software", membership: "StudentID", upvotes: 45, downvotes: 7, expiryIn: 12, location: "Global"},
		{title: "Discounted gym membership", description: "Reduced monthly rate at campus-partner gyms.",
			product: "Gyms", membership: "StudentID", upvotes: 16, downvotes: 9, location: "Canada"},
		{title: "Cheap movie nights", description: "Student pricing every Tuesday.",
			product: "Cineplex", membership: "StudentID", upvotes: 13, downvotes: 2, expiryIn: 6, location: "Canada"},
		{title: "Discounted gas", description: "Cents-per-litre discount at warehouse gas stations.",
			product: "Gas", membership: "Costco", upvotes: 38, downvotes: 4, location: "Canada"},
		{title: "Free hearing test", description: "Complimentary hearing test at the hearing centre.",
			product: "Hearing Centre", membership: "Costco", upvotes: 5, downvotes: 0, location: "Canada"},
		{title: "Executive cashback", description: "2% annual reward on eligible purchases.",
			product: "Executive", membership: "Costco", upvotes: 25, downvotes: 11, location: "Global"},
		{title: "Cheap food court", description: "The hot dog combo price has not changed in decades.",
			product: "Food court", membership: "Costco", upvotes: 52, downvotes: 1, location: "Global"},
		{title: "Travel packages", description: "Member pricing on bundled vacation packages.",
			product: "Costco Travel", membership: "Costco", upvotes: 8, downvotes: 3, expiryIn: 10, location: "Global"},
		{title: "Purchase protection", description: "Covers damage or theft for 90 days after purchase.",
			product: "Insurance", membership: "Visa", upvotes: 10, downvotes: 2, location: "Global"},
	}

	today := models.Today()
	for _, sp := range perks {
		p := &models.Perk{
			Title:       sp.title,
			Description: sp.description,
			Product:     sp.product,
			Membership:  models.MembershipRef{ID: memberships[sp.membership]},
			Upvotes:     sp.upvotes,
			Downvotes:   sp.downvotes,
		}
		if sp.expiryIn > 0 {
			expiry := models.Date{Time: today.AddDate(0, sp.expiryIn, 0)}
			p.ExpiryDate = &expiry
		}
		if sp.location != "" {
			loc := sp.location
			p.Location = &loc
		}
		if err := perkRepo.Create(ctx, p); err != nil {
			return fmt.Errorf("seed: failed to create perk %q: %w", sp.title, err)
		}
	}

	log.Printf("[seed] loaded %d memberships, %d users, %d perks",
		len(memberships), len(users), len(perks))
	return nil
}
