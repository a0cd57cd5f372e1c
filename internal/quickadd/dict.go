package quickadd

import "time"

// All dictionary keys are lowercase; matching happens against the folded
// buffer. Spelling variants are separate keys mapping to the same value,
// including the ё/е pair.

var priorityKeywords = map[string]int{
	"urgent":    5,
	"срочно":    5,
	"important": 4,
	"важно":     4,
}

// clockTime is an extracted (hour, minute) pair.
type clockTime struct {
	hour, min int
}

var dayPeriods = map[string]clockTime{
	"morning":   {9, 0},
	"утром":     {9, 0},
	"afternoon": {15, 0},
	"днём":      {15, 0},
	"днем":      {15, 0},
	"evening":   {20, 0},
	"вечером":   {20, 0},
	"night":     {23, 0},
	"ночью":     {23, 0},
	"noon":      {12, 0},
	"полдень":   {12, 0},
	"в полдень": {12, 0},
}

const (
	secondsPerHour = 3600
	secondsPerDay  = 86400
	secondsPerWeek = 604800
)

// intervalRules are checked in order; the first phrase found wins and
// short-circuits the rest.
var intervalRules = []struct {
	phrases []string
	seconds int64
	mode    RepeatMode
}{
	{
		phrases: []string{"каждый день", "ежедневно", "every day", "daily"},
		seconds: secondsPerDay,
		mode:    RepeatModeInterval,
	},
	{
		phrases: []string{"каждую неделю", "еженедельно", "every week", "weekly"},
		seconds: secondsPerWeek,
		mode:    RepeatModeInterval,
	},
	{
		phrases: []string{"каждый месяц", "ежемесячно", "every month", "monthly"},
		mode:    RepeatModeMonth,
	},
	{
		phrases: []string{"каждый час", "ежечасно", "every hour", "hourly"},
		seconds: secondsPerHour,
		mode:    RepeatModeInterval,
	},
}

// tuesdayIdioms is the plural "on Tuesdays" idiom in both languages.
var tuesdayIdioms = []string{"по вторникам", "on tuesdays"}

// weekdayRepeats covers "every <weekday>" with the Russian agreement forms
// каждый/каждую/каждое spelled out per weekday.
var weekdayRepeats = []struct {
	phrase string
	day    time.Weekday
}{
	{"every monday", time.Monday},
	{"каждый понедельник", time.Monday},
	{"every tuesday", time.Tuesday},
	{"каждый вторник", time.Tuesday},
	{"every wednesday", time.Wednesday},
	{"каждую среду", time.Wednesday},
	{"every thursday", time.Thursday},
	{"каждый четверг", time.Thursday},
	{"every friday", time.Friday},
	{"каждую пятницу", time.Friday},
	{"every saturday", time.Saturday},
	{"каждую субботу", time.Saturday},
	{"every sunday", time.Sunday},
	{"каждое воскресенье", time.Sunday},
}

// weekdayNames covers bare weekday mentions; Russian feminine weekdays get
// their accusative form ("в среду") as an extra key.
var weekdayNames = []struct {
	name string
	day  time.Weekday
}{
	{"monday", time.Monday},
	{"понедельник", time.Monday},
	{"tuesday", time.Tuesday},
	{"вторник", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"среда", time.Wednesday},
	{"среду", time.Wednesday},
	{"thursday", time.Thursday},
	{"четверг", time.Thursday},
	{"friday", time.Friday},
	{"пятница", time.Friday},
	{"пятницу", time.Friday},
	{"saturday", time.Saturday},
	{"суббота", time.Saturday},
	{"субботу", time.Saturday},
	{"sunday", time.Sunday},
	{"воскресенье", time.Sunday},
}

// relativeDays resolve day offsets from the reference instant. "послезавтра"
// has no one-word English counterpart; the phrase form would collide with
// the earlier "tomorrow" check.
var relativeDays = []struct {
	word   string
	offset int
}{
	{"today", 0},
	{"сегодня", 0},
	{"tomorrow", 1},
	{"завтра", 1},
	{"послезавтра", 2},
}

var timePrepositions = []string{"at", "в", "к"}

var weekdayPrepositions = []string{"on", "в", "во"}
