package seeds

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	rng := rand.New(rand.NewSource(42))

	// Truncate existing data before insert
	log.Println("[seed] truncating existing data")
	if _, err := pool.Exec(ctx, `
		TRUNCATE orders, menu, users RESTART IDENTITY CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	log.Println("[seed] inserting users")
	if err := seedUsers(ctx, pool); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	log.Println("[seed] inserting menu")
	if err := seedMenu(ctx, pool); err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}

	log.Println("[seed] inserting orders")
	if err := seedOrders(ctx, pool, rng, 200); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}

	log.Println("[seed] seeding complete")
	return nil
}

func seedUsers(ctx context.Context, pool *pgxpool.Pool) error {
	names := []string{
		"Budi Santoso", "Siti Aminah", "Agus Wijaya", "Dewi Lestari",
		"Joko Susilo", "Rina Marlina", "Hendra Gunawan", "Maya Sari",
		"Andi Pratama", "Fitri Handayani", "Dedi Kurniawan", "Lina Wati",
		"Rudi Hartono", "Nina Kartika", "Eko Prasetyo", "Yuni Astuti",
		"Bambang Riyadi", "Sari Indah", "Tono Sugiarto", "Wulan Dari",
	}
	favorites := []string{"Umum", "Minuman", "Makanan Berat", "Snack"}

	rows := []string{}
	args := []any{}
	for i, name := range names {
		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d)", base+1, base+2))
		args = append(args, name, favorites[i%len(favorites)])
	}

	query := "INSERT INTO users (name, favorite_category) VALUES " + strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

type menuSeed struct {
	name     string
	price    int64
	category string
}

func seedMenu(ctx context.Context, pool *pgxpool.Pool) error {
	items := []menuSeed{
		{"Paket Keluarga Hemat", 185000, "Paket Jumbo"},
		{"Paket Nasi Ayam Komplit", 150000, "Paket Jumbo"},
		{"Bucket Ayam Goreng 8pcs", 120000, "Paket Jumbo"},
		{"Seafood Platter", 250000, "Paket Jumbo"},
		{"Pizza Meat Lovers", 135000, "Paket Jumbo"},
		{"Tumpeng Mini", 200000, "Paket Jumbo"},
		{"Gurame Bakar Madu", 95000, "Makanan Berat"},
		{"Sate Kambing 10 Tusuk", 65000, "Makanan Berat"},
		{"Nasi Goreng Spesial", 35000, "Makanan Berat"},
		{"Ayam Geprek Sambal Matah", 28000, "Makanan Berat"},
		{"Rendang Daging", 45000, "Makanan Berat"},
		{"Sop Buntut", 55000, "Makanan Berat"},
		{"Soto Ayam Lamongan", 30000, "Makanan Berat"},
		{"Rawon Surabaya", 38000, "Makanan Berat"},
		{"Bakso Urat Jumbo", 32000, "Makanan Berat"},
		{"Mie Godog Jawa", 27000, "Makanan Berat"},
		{"Seblak Komplit", 25000, "Makanan Berat"},
		{"Ramen Kuah Pedas", 42000, "Makanan Berat"},
		{"Sayur Asem", 15000, "Makanan Berat"},
		{"Capcay Goreng", 28000, "Makanan Berat"},
		{"Martabak Manis Keju", 40000, "Snack"},
		{"Martabak Telur", 35000, "Snack"},
		{"Pisang Goreng Keju", 18000, "Snack"},
		{"Tahu Crispy", 15000, "Snack"},
		{"Kentang Goreng", 20000, "Snack"},
		{"Es Teh Manis", 8000, "Minuman"},
		{"Es Jeruk Peras", 12000, "Minuman"},
		{"Es Campur", 18000, "Minuman"},
		{"Jus Alpukat", 18000, "Minuman"},
		{"Jus Mangga", 15000, "Minuman"},
		{"Soda Gembira", 15000, "Minuman"},
		{"Cola Float", 16000, "Minuman"},
		{"Sprite Dingin", 10000, "Minuman"},
		{"Milkshake Coklat", 22000, "Minuman"},
		{"Thai Tea Cold Brew", 20000, "Minuman"},
		{"Air Mineral", 5000, "Minuman"},
		{"Kopi Tubruk", 10000, "Minuman"},
		{"Kopi Susu Gula Aren", 18000, "Minuman"},
		{"Teh Tarik Hot", 12000, "Minuman"},
		{"Wedang Jahe", 12000, "Minuman"},
		{"Bandrek Susu", 14000, "Minuman"},
	}

	rows := []string{}
	args := []any{}
	for _, item := range items {
		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d)", base+1, base+2, base+3))
		args = append(args, item.name, item.price, item.category)
	}

	query := "INSERT INTO menu (menu_name, price, category) VALUES " + strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedOrders(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, n int) error {
	weathers := []string{"Cerah", "Hujan"}
	weatherWeights := []float64{0.7, 0.3}
	groups := []string{"Sendiri", "Keluarga"}
	groupWeights := []float64{0.6, 0.4}

	rows := []string{}
	args := []any{}

	for i := 0; i < n; i++ {
		userID := rng.Intn(20) + 1
		menuID := rng.Intn(41) + 1
		weather := weightedChoice(rng, weathers, weatherWeights)
		group := weightedChoice(rng, groups, groupWeights)

		// Orders cluster around meal hours.
		hour := []int{7, 8, 12, 13, 19, 20}[rng.Intn(6)]
		orderedAt := time.Now().AddDate(0, 0, -rng.Intn(180))
		orderedAt = time.Date(orderedAt.Year(), orderedAt.Month(), orderedAt.Day(),
			hour, rng.Intn(60), 0, 0, orderedAt.Location())

		timeOfDay := "Malam"
		if hour >= 5 && hour < 11 {
			timeOfDay = "Pagi"
		} else if hour >= 11 && hour < 18 {
			timeOfDay = "Siang"
		}

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7))
		args = append(args, userID, menuID, 5, weather, group, timeOfDay, orderedAt)
	}

	if len(rows) == 0 {
		return nil
	}

	query := "INSERT INTO orders (user_id, menu_id, rating, weather, group_size, time_of_day, timestamp) VALUES " +
		strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func weightedChoice(rng *rand.Rand, choices []string, weights []float64) string {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if r <= cumulative {
			return choices[i]
		}
	}
	return choices[len(choices)-1]
}
