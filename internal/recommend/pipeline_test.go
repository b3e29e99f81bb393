package recommend

import (
	"errors"
	"testing"

	"github.com/Rangggase/Holy-Grail/internal/domain"
)

type stubEncoder map[string]int

func (e stubEncoder) Contains(v string) bool {
	_, ok := e[v]
	return ok
}

func (e stubEncoder) Transform(v string) (int, bool) {
	code, ok := e[v]
	return code, ok
}

type stubBundle struct {
	users, items, weather, timeOfDay, group stubEncoder
	predict                                 func(users, items, weathers, times, groups []int) ([]float64, error)

	calls     int
	lastUsers []int
	lastItems []int
}

func (b *stubBundle) UserEncoder() Encoder    { return b.users }
func (b *stubBundle) ItemEncoder() Encoder    { return b.items }
func (b *stubBundle) WeatherEncoder() Encoder { return b.weather }
func (b *stubBundle) TimeEncoder() Encoder    { return b.timeOfDay }
func (b *stubBundle) GroupEncoder() Encoder   { return b.group }

func (b *stubBundle) BatchPredict(users, items, weathers, times, groups []int) ([]float64, error) {
	b.calls++
	b.lastUsers = users
	b.lastItems = items
	return b.predict(users, items, weathers, times, groups)
}

func fullContextEncoders(b *stubBundle) {
	b.weather = stubEncoder{"Cerah": 0, "Hujan": 1}
	b.timeOfDay = stubEncoder{"Pagi": 0, "Siang": 1, "Malam": 2}
	b.group = stubEncoder{"Sendiri": 0, "Keluarga": 1}
}

func TestRecommendModelAbsentFamilyBoostDrivesRanking(t *testing.T) {
	catalog := []domain.MenuItem{
		{ID: 1, Name: "Nasi Putih", Category: "Makanan Berat"},
		{ID: 2, Name: "Paket Spesial", Category: "Makanan Berat"},
	}
	ctx := domain.Context{
		Weather:   domain.WeatherCerah,
		GroupSize: domain.GroupKeluarga,
		TimeOfDay: domain.TimeSiang,
	}

	menu := Recommend(catalog, domain.Customer{Name: "Baru"}, ctx, nil)

	if len(menu.Food) != 2 {
		t.Fatalf("expected 2 food entries, got %d", len(menu.Food))
	}
	top, second := menu.Food[0], menu.Food[1]
	if top.Item.Name != "Paket Spesial" || second.Item.Name != "Nasi Putih" {
		t.Errorf("expected [Paket Spesial, Nasi Putih], got [%s, %s]", top.Item.Name, second.Item.Name)
	}
	if top.RawScore != 0.0 || second.RawScore != 0.0 {
		t.Errorf("raw scores must stay 0.0 without a model, got %f and %f", top.RawScore, second.RawScore)
	}
	if top.FinalScore != 10.0 {
		t.Errorf("expected family boost 10.0, got %f", top.FinalScore)
	}
	if second.FinalScore != 0.0 {
		t.Errorf("expected unboosted 0.0, got %f", second.FinalScore)
	}
	if top.Affinity != AffinitySuperMatch {
		t.Errorf("expected %q, got %q", AffinitySuperMatch, top.Affinity)
	}
	if second.Affinity != AffinityNewItem {
		t.Errorf("expected %q, got %q", AffinityNewItem, second.Affinity)
	}
}

func TestRecommendRainExcludesColdAndBoostsWarm(t *testing.T) {
	catalog := []domain.MenuItem{
		{ID: 1, Name: "Es Teh Manis", Category: domain.BeverageCategory},
		{ID: 2, Name: "Wedang Jahe", Category: domain.BeverageCategory},
	}
	ctx := domain.Context{
		Weather:   domain.WeatherHujan,
		GroupSize: domain.GroupSendiri,
		TimeOfDay: domain.TimeMalam,
	}

	menu := Recommend(catalog, domain.Customer{Name: "Baru"}, ctx, nil)

	if len(menu.Drinks) != 1 {
		t.Fatalf("expected 1 drink, got %d", len(menu.Drinks))
	}
	if menu.Drinks[0].Item.Name != "Wedang Jahe" {
		t.Errorf("expected Wedang Jahe, got %s", menu.Drinks[0].Item.Name)
	}
	if menu.Drinks[0].FinalScore != menu.Drinks[0].RawScore+2.0 {
		t.Errorf("expected +2.0 warm boost, got raw=%f final=%f",
			menu.Drinks[0].RawScore, menu.Drinks[0].FinalScore)
	}
}

func TestRecommendUnknownCustomerUsesSentinelCode(t *testing.T) {
	bundle := &stubBundle{
		users: stubEncoder{"7": 3},
		items: stubEncoder{"1": 0, "2": 1},
		predict: func(users, items, weathers, times, groups []int) ([]float64, error) {
			scores := make([]float64, len(items))
			for i := range scores {
				scores[i] = float64(i+1) * 0.5
			}
			return scores, nil
		},
	}
	fullContextEncoders(bundle)

	catalog := []domain.MenuItem{
		{ID: 1, Name: "Nasi Goreng Spesial", Category: "Makanan Berat"},
		{ID: 2, Name: "Rendang Daging", Category: "Makanan Berat"},
	}
	ctx := domain.Context{
		Weather:   domain.WeatherCerah,
		GroupSize: domain.GroupSendiri,
		TimeOfDay: domain.TimePagi,
	}

	// Returning customer whose id the encoder has never seen.
	menu := Recommend(catalog, domain.Customer{ID: 99, Returning: true}, ctx, bundle)

	if bundle.calls != 1 {
		t.Fatalf("expected exactly one batched predict call, got %d", bundle.calls)
	}
	for _, u := range bundle.lastUsers {
		if u != UnknownUserCode {
			t.Errorf("expected sentinel user code %d, got %d", UnknownUserCode, u)
		}
	}
	if len(menu.Food) != 2 {
		t.Fatalf("expected 2 food entries, got %d", len(menu.Food))
	}
	if menu.Food[0].RawScore == 0.0 {
		t.Error("expected model scores to be applied")
	}
}

func TestRecommendUnknownItemKeptWithZeroRawScore(t *testing.T) {
	bundle := &stubBundle{
		users: stubEncoder{},
		items: stubEncoder{"1": 0}, // item 2 is unknown to the model
		predict: func(users, items, weathers, times, groups []int) ([]float64, error) {
			return []float64{1.5}, nil
		},
	}
	fullContextEncoders(bundle)

	catalog := []domain.MenuItem{
		{ID: 1, Name: "Nasi Goreng Spesial", Category: "Makanan Berat"},
		{ID: 2, Name: "Rendang Daging", Category: "Makanan Berat"},
	}
	ctx := domain.Context{
		Weather:   domain.WeatherCerah,
		GroupSize: domain.GroupSendiri,
		TimeOfDay: domain.TimeSiang,
	}

	menu := Recommend(catalog, domain.Customer{Name: "Baru"}, ctx, bundle)

	if len(bundle.lastItems) != 1 {
		t.Fatalf("expected 1 scored row, got %d", len(bundle.lastItems))
	}
	if len(menu.Food) != 2 {
		t.Fatalf("unknown item must survive the pipeline, got %d entries", len(menu.Food))
	}
	if menu.Food[0].Item.ID != 1 || menu.Food[0].RawScore != 1.5 {
		t.Errorf("expected item 1 scored 1.5 first, got id=%d raw=%f",
			menu.Food[0].Item.ID, menu.Food[0].RawScore)
	}
	if menu.Food[1].Item.ID != 2 || menu.Food[1].RawScore != 0.0 {
		t.Errorf("expected unknown item 2 with raw 0.0, got id=%d raw=%f",
			menu.Food[1].Item.ID, menu.Food[1].RawScore)
	}
}

func TestRecommendUnknownContextValueDegrades(t *testing.T) {
	bundle := &stubBundle{
		users:     stubEncoder{},
		items:     stubEncoder{"1": 0},
		weather:   stubEncoder{"Cerah": 0}, // Hujan missing
		timeOfDay: stubEncoder{"Pagi": 0, "Siang": 1, "Malam": 2},
		group:     stubEncoder{"Sendiri": 0, "Keluarga": 1},
		predict: func(users, items, weathers, times, groups []int) ([]float64, error) {
			return []float64{9.9}, nil
		},
	}

	catalog := []domain.MenuItem{{ID: 1, Name: "Nasi Goreng Spesial", Category: "Makanan Berat"}}
	ctx := domain.Context{
		Weather:   domain.WeatherHujan,
		GroupSize: domain.GroupSendiri,
		TimeOfDay: domain.TimeSiang,
	}

	menu := Recommend(catalog, domain.Customer{Name: "Baru"}, ctx, bundle)

	if bundle.calls != 0 {
		t.Errorf("expected no predict call, got %d", bundle.calls)
	}
	if len(menu.Food) != 1 || menu.Food[0].RawScore != 0.0 {
		t.Errorf("expected rule-only result with raw 0.0, got %+v", menu.Food)
	}
}

func TestRecommendInferenceErrorDegrades(t *testing.T) {
	bundle := &stubBundle{
		users: stubEncoder{},
		items: stubEncoder{"1": 0},
		predict: func(users, items, weathers, times, groups []int) ([]float64, error) {
			return nil, errors.New("model inference failed")
		},
	}
	fullContextEncoders(bundle)

	catalog := []domain.MenuItem{{ID: 1, Name: "Nasi Goreng Spesial", Category: "Makanan Berat"}}
	ctx := domain.Context{
		Weather:   domain.WeatherCerah,
		GroupSize: domain.GroupSendiri,
		TimeOfDay: domain.TimeSiang,
	}

	menu := Recommend(catalog, domain.Customer{Name: "Baru"}, ctx, bundle)

	if len(menu.Food) != 1 || menu.Food[0].RawScore != 0.0 {
		t.Errorf("inference failure must degrade to zero scores, got %+v", menu.Food)
	}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	ctx := domain.Context{
		Weather:   domain.WeatherHujan,
		GroupSize: domain.GroupSendiri,
		TimeOfDay: domain.TimeMalam,
	}
	menu := Recommend(nil, domain.Customer{Name: "Baru"}, ctx, nil)
	if len(menu.Food) != 0 || len(menu.Drinks) != 0 {
		t.Errorf("expected empty ranked menu, got %+v", menu)
	}
}
