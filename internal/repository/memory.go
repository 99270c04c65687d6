package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"sports-admin-service/internal/repository/model"
)

// memoryRepository keeps every collection in a map keyed by id, with one
// monotonic counter per collection. The HTTP server handles requests
// concurrently, so unlike the single-threaded deployment this was modeled
// on, every operation takes the mutex.
type memoryRepository struct {
	mu sync.Mutex

	counters map[string]int64

	teams       map[int64]model.Team
	matches     map[int64]model.Match
	tournaments map[int64]model.Tournament
	programs    map[int64]model.Program
	coaches     map[int64]model.Coach
	camps       map[int64]model.Camp
	users       map[int64]model.User
	roles       map[int64]model.Role
	activities  map[int64]model.Activity
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		counters:    make(map[string]int64),
		teams:       make(map[int64]model.Team),
		matches:     make(map[int64]model.Match),
		tournaments: make(map[int64]model.Tournament),
		programs:    make(map[int64]model.Program),
		coaches:     make(map[int64]model.Coach),
		camps:       make(map[int64]model.Camp),
		users:       make(map[int64]model.User),
		roles:       make(map[int64]model.Role),
		activities:  make(map[int64]model.Activity),
	}
}

func (m *memoryRepository) nextID(collection string) int64 {
	m.counters[collection]++
	return m.counters[collection]
}

func stamp(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}

func (m *memoryRepository) ListTeams(_ context.Context) ([]*model.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	teams := make([]*model.Team, 0, len(m.teams))
	for id := range m.teams {
		t := m.teams[id]
		teams = append(teams, &t)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
	return teams, nil
}

func (m *memoryRepository) GetTeamByID(_ context.Context, id int64) (*model.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.teams[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (m *memoryRepository) CreateTeam(_ context.Context, team *model.Team) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	team.ID = m.nextID("teams")
	team.CreatedAt = stamp(team.CreatedAt)
	m.teams[team.ID] = *team
	return nil
}

func (m *memoryRepository) ListMatches(_ context.Context) ([]*model.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	matches := make([]*model.Match, 0, len(m.matches))
	for id := range m.matches {
		mt := m.matches[id]
		matches = append(matches, &mt)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}

func (m *memoryRepository) GetMatchByID(_ context.Context, id int64) (*model.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	mt, ok := m.matches[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &mt, nil
}

func (m *memoryRepository) CreateMatch(_ context.Context, match *model.Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	match.ID = m.nextID("matches")
	match.CreatedAt = stamp(match.CreatedAt)
	m.matches[match.ID] = *match
	return nil
}

func (m *memoryRepository) ListTournaments(_ context.Context) ([]*model.Tournament, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	tournaments := make([]*model.Tournament, 0, len(m.tournaments))
	for id := range m.tournaments {
		t := m.tournaments[id]
		tournaments = append(tournaments, &t)
	}
	sort.Slice(tournaments, func(i, j int) bool { return tournaments[i].ID < tournaments[j].ID })
	return tournaments, nil
}

func (m *memoryRepository) CreateTournament(_ context.Context, tournament *model.Tournament) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tournament.ID = m.nextID("tournaments")
	tournament.CreatedAt = stamp(tournament.CreatedAt)
	m.tournaments[tournament.ID] = *tournament
	return nil
}

func (m *memoryRepository) ListPrograms(_ context.Context) ([]*model.Program, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	programs := make([]*model.Program, 0, len(m.programs))
	for id := range m.programs {
		p := m.programs[id]
		programs = append(programs, &p)
	}
	sort.Slice(programs, func(i, j int) bool { return programs[i].ID < programs[j].ID })
	return programs, nil
}

func (m *memoryRepository) CreateProgram(_ context.Context, program *model.Program) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	program.ID = m.nextID("programs")
	program.CreatedAt = stamp(program.CreatedAt)
	m.programs[program.ID] = *program
	return nil
}

func (m *memoryRepository) ListCoaches(_ context.Context) ([]*model.Coach, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	coaches := make([]*model.Coach, 0, len(m.coaches))
	for id := range m.coaches {
		c := m.coaches[id]
		coaches = append(coaches, &c)
	}
	sort.Slice(coaches, func(i, j int) bool { return coaches[i].ID < coaches[j].ID })
	return coaches, nil
}

func (m *memoryRepository) CreateCoach(_ context.Context, coach *model.Coach) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	coach.ID = m.nextID("coaches")
	coach.CreatedAt = stamp(coach.CreatedAt)
	m.coaches[coach.ID] = *coach
	return nil
}

func (m *memoryRepository) ListCamps(_ context.Context) ([]*model.Camp, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	camps := make([]*model.Camp, 0, len(m.camps))
	for id := range m.camps {
		c := m.camps[id]
		camps = append(camps, &c)
	}
	sort.Slice(camps, func(i, j int) bool { return camps[i].ID < camps[j].ID })
	return camps, nil
}

func (m *memoryRepository) CreateCamp(_ context.Context, camp *model.Camp) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	camp.ID = m.nextID("camps")
	camp.CreatedAt = stamp(camp.CreatedAt)
	m.camps[camp.ID] = *camp
	return nil
}

func (m *memoryRepository) ListUsers(_ context.Context) ([]*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	users := make([]*model.User, 0, len(m.users))
	for id := range m.users {
		u := m.users[id]
		users = append(users, &u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *memoryRepository) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id := range m.users {
		if m.users[id].Email == email {
			u := m.users[id]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryRepository) CreateUser(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user.ID = m.nextID("users")
	user.CreatedAt = stamp(user.CreatedAt)
	m.users[user.ID] = *user
	return nil
}

func (m *memoryRepository) ListRoles(_ context.Context) ([]*model.Role, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	roles := make([]*model.Role, 0, len(m.roles))
	for id := range m.roles {
		r := m.roles[id]
		roles = append(roles, &r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].ID < roles[j].ID })
	return roles, nil
}

func (m *memoryRepository) GetRoleByID(_ context.Context, id int64) (*model.Role, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.roles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

func (m *memoryRepository) CreateRole(_ context.Context, role *model.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	role.ID = m.nextID("roles")
	role.CreatedAt = stamp(role.CreatedAt)
	m.roles[role.ID] = *role
	return nil
}

func (m *memoryRepository) ListActivities(_ context.Context) ([]*model.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	activities := make([]*model.Activity, 0, len(m.activities))
	for id := range m.activities {
		a := m.activities[id]
		activities = append(activities, &a)
	}
	sort.Slice(activities, func(i, j int) bool { return activities[i].ID > activities[j].ID })
	return activities, nil
}

func (m *memoryRepository) CreateActivity(_ context.Context, activity *model.Activity) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	activity.ID = m.nextID("activities")
	if activity.Timestamp.IsZero() {
		activity.Timestamp = time.Now().UTC()
	}
	m.activities[activity.ID] = *activity
	return nil
}
