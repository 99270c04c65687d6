package model

import (
	"time"
)

// Entity type labels recorded on activity entries.
const (
	EntityTypeTournament = "TOURNAMENT"
	EntityTypeCoach      = "COACH"
	EntityTypeCamp       = "CAMP"
	EntityTypeRole       = "ROLE"
)

type Team struct {
	ID        int64     `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Sport     string    `bson:"sport" json:"sport"`
	City      string    `bson:"city,omitempty" json:"city,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type Match struct {
	ID           int64     `bson:"_id" json:"id"`
	TournamentID int64     `bson:"tournamentId" json:"tournamentId"`
	HomeTeamID   int64     `bson:"homeTeamId" json:"homeTeamId"`
	AwayTeamID   int64     `bson:"awayTeamId" json:"awayTeamId"`
	Venue        string    `bson:"venue,omitempty" json:"venue,omitempty"`
	StartsAt     time.Time `bson:"startsAt" json:"startsAt"`
	Status       string    `bson:"status" json:"status"`
	HomeScore    int       `bson:"homeScore" json:"homeScore"`
	AwayScore    int       `bson:"awayScore" json:"awayScore"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

type Tournament struct {
	ID        int64     `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Sport     string    `bson:"sport,omitempty" json:"sport,omitempty"`
	Location  string    `bson:"location,omitempty" json:"location,omitempty"`
	StartDate time.Time `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate   time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Status    string    `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type Program struct {
	ID        int64     `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Sport     string    `bson:"sport,omitempty" json:"sport,omitempty"`
	AgeGroup  string    `bson:"ageGroup,omitempty" json:"ageGroup,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type Coach struct {
	ID         int64     `bson:"_id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Sport      string    `bson:"sport,omitempty" json:"sport,omitempty"`
	Experience string    `bson:"experience,omitempty" json:"experience,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

type Camp struct {
	ID        int64     `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Location  string    `bson:"location,omitempty" json:"location,omitempty"`
	Sport     string    `bson:"sport,omitempty" json:"sport,omitempty"`
	Capacity  int       `bson:"capacity,omitempty" json:"capacity,omitempty"`
	StartDate time.Time `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate   time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type User struct {
	ID         int64     `bson:"_id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email" json:"email"`
	RoleID     int64     `bson:"roleId,omitempty" json:"roleId,omitempty"`
	IsRootUser bool      `bson:"isRootUser" json:"isRootUser"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

type Role struct {
	ID          int64     `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Permissions []string  `bson:"permissions" json:"permissions"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// Activity is an append-only audit entry recorded as a side effect of
// selected creations. EntityID is denormalized; nothing enforces that the
// referenced record still exists.
type Activity struct {
	ID          int64     `bson:"_id" json:"id"`
	UserID      int64     `bson:"userId" json:"userId"`
	Action      string    `bson:"action" json:"action"`
	Description string    `bson:"description" json:"description"`
	EntityType  string    `bson:"entityType" json:"entityType"`
	EntityID    int64     `bson:"entityId" json:"entityId"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
	User        string    `bson:"user" json:"user"`
}
