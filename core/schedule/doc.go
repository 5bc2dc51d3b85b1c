// Package schedule implements the outage-schedule core: locating the
// DisconSchedule objects embedded in the shutdowns page, normalizing raw
// per-hour status codes, and building per-group, date-indexed schedules.
// All functions are pure; transport and persistence live in infra.
package schedule
