package domain

type Weather string

const (
	WeatherCerah Weather = "Cerah"
	WeatherHujan Weather = "Hujan"
)

type GroupSize string

const (
	GroupSendiri  GroupSize = "Sendiri"
	GroupKeluarga GroupSize = "Keluarga"
)

type TimeOfDay string

const (
	TimePagi  TimeOfDay = "Pagi"
	TimeSiang TimeOfDay = "Siang"
	TimeMalam TimeOfDay = "Malam"
)

// Context describes the circumstances of one recommendation request.
// Hour is the raw clock value and is used only to derive TimeOfDay and
// the display label; the model never sees it directly.
type Context struct {
	Weather   Weather
	GroupSize GroupSize
	TimeOfDay TimeOfDay
	Hour      int
}
