package domain

// OffsetMinutes is the lead time before sunset at which a reminder fires.
const OffsetMinutes = 5

// CheckpointSpec is the cron expression for the daily rederive checkpoint
// (01:00 local time). It runs after the latest plausible sunset and before
// the earliest plausible next-day activity in a channel.
const CheckpointSpec = "0 1 * * *"

// SunsetDateFormat is the calendar-date format sent to the sunset API.
const SunsetDateFormat = "2006-01-02"

// ClockFormat is how sunset and fire times are shown to users.
const ClockFormat = "15:04"
