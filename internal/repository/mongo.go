package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"sports-admin-service/internal/config"
	"sports-admin-service/internal/repository/model"
)

const databaseName = "sports-admin"

const (
	teamsCollection       = "teams"
	matchesCollection     = "matches"
	tournamentsCollection = "tournaments"
	programsCollection    = "programs"
	coachesCollection     = "coaches"
	campsCollection       = "camps"
	usersCollection       = "users"
	rolesCollection       = "roles"
	activitiesCollection  = "activities"
	countersCollection    = "counters"
)

type mongoRepository struct {
	database *mongo.Database
}

func NewMongoRepository(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup,
	cfg config.MongoDBConfig) (Repository, error) {

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Info("disconnecting from mongodb")
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Errorw("failed to disconnect from mongodb", "error", err)
		}
	}()

	return &mongoRepository{
		database: client.Database(databaseName),
	}, nil
}

// nextID increments the per-collection counter document and returns the new
// value. The upsert makes the first call for a collection yield 1.
func (m *mongoRepository) nextID(ctx context.Context, collection string) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := m.database.Collection(countersCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": collection},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter for %s: %w", collection, err)
	}

	return counter.Seq, nil
}

func listCollection[T any](ctx context.Context, coll *mongo.Collection, sortOrder int) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: sortOrder}}))
	if err != nil {
		return nil, err
	}

	var result []T
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	slice := make([]*T, len(result))
	for i := range result {
		slice[i] = &result[i]
	}
	return slice, nil
}

func getByID[T any](ctx context.Context, coll *mongo.Collection, id int64) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result T
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (m *mongoRepository) insert(ctx context.Context, collection string, assign func(id int64), record any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	id, err := m.nextID(ctx, collection)
	if err != nil {
		return err
	}
	assign(id)

	_, err = m.database.Collection(collection).InsertOne(ctx, record)
	return err
}

func (m *mongoRepository) ListTeams(ctx context.Context) ([]*model.Team, error) {
	return listCollection[model.Team](ctx, m.database.Collection(teamsCollection), 1)
}

func (m *mongoRepository) GetTeamByID(ctx context.Context, id int64) (*model.Team, error) {
	return getByID[model.Team](ctx, m.database.Collection(teamsCollection), id)
}

func (m *mongoRepository) CreateTeam(ctx context.Context, team *model.Team) error {
	team.CreatedAt = stamp(team.CreatedAt)
	return m.insert(ctx, teamsCollection, func(id int64) { team.ID = id }, team)
}

func (m *mongoRepository) ListMatches(ctx context.Context) ([]*model.Match, error) {
	return listCollection[model.Match](ctx, m.database.Collection(matchesCollection), 1)
}

func (m *mongoRepository) GetMatchByID(ctx context.Context, id int64) (*model.Match, error) {
	return getByID[model.Match](ctx, m.database.Collection(matchesCollection), id)
}

func (m *mongoRepository) CreateMatch(ctx context.Context, match *model.Match) error {
	match.CreatedAt = stamp(match.CreatedAt)
	return m.insert(ctx, matchesCollection, func(id int64) { match.ID = id }, match)
}

func (m *mongoRepository) ListTournaments(ctx context.Context) ([]*model.Tournament, error) {
	return listCollection[model.Tournament](ctx, m.database.Collection(tournamentsCollection), 1)
}

func (m *mongoRepository) CreateTournament(ctx context.Context, tournament *model.Tournament) error {
	tournament.CreatedAt = stamp(tournament.CreatedAt)
	return m.insert(ctx, tournamentsCollection, func(id int64) { tournament.ID = id }, tournament)
}

func (m *mongoRepository) ListPrograms(ctx context.Context) ([]*model.Program, error) {
	return listCollection[model.Program](ctx, m.database.Collection(programsCollection), 1)
}

func (m *mongoRepository) CreateProgram(ctx context.Context, program *model.Program) error {
	program.CreatedAt = stamp(program.CreatedAt)
	return m.insert(ctx, programsCollection, func(id int64) { program.ID = id }, program)
}

func (m *mongoRepository) ListCoaches(ctx context.Context) ([]*model.Coach, error) {
	return listCollection[model.Coach](ctx, m.database.Collection(coachesCollection), 1)
}

func (m *mongoRepository) CreateCoach(ctx context.Context, coach *model.Coach) error {
	coach.CreatedAt = stamp(coach.CreatedAt)
	return m.insert(ctx, coachesCollection, func(id int64) { coach.ID = id }, coach)
}

func (m *mongoRepository) ListCamps(ctx context.Context) ([]*model.Camp, error) {
	return listCollection[model.Camp](ctx, m.database.Collection(campsCollection), 1)
}

func (m *mongoRepository) CreateCamp(ctx context.Context, camp *model.Camp) error {
	camp.CreatedAt = stamp(camp.CreatedAt)
	return m.insert(ctx, campsCollection, func(id int64) { camp.ID = id }, camp)
}

func (m *mongoRepository) ListUsers(ctx context.Context) ([]*model.User, error) {
	return listCollection[model.User](ctx, m.database.Collection(usersCollection), 1)
}

func (m *mongoRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user model.User
	err := m.database.Collection(usersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (m *mongoRepository) CreateUser(ctx context.Context, user *model.User) error {
	user.CreatedAt = stamp(user.CreatedAt)
	return m.insert(ctx, usersCollection, func(id int64) { user.ID = id }, user)
}

func (m *mongoRepository) ListRoles(ctx context.Context) ([]*model.Role, error) {
	return listCollection[model.Role](ctx, m.database.Collection(rolesCollection), 1)
}

func (m *mongoRepository) GetRoleByID(ctx context.Context, id int64) (*model.Role, error) {
	return getByID[model.Role](ctx, m.database.Collection(rolesCollection), id)
}

func (m *mongoRepository) CreateRole(ctx context.Context, role *model.Role) error {
	role.CreatedAt = stamp(role.CreatedAt)
	return m.insert(ctx, rolesCollection, func(id int64) { role.ID = id }, role)
}

func (m *mongoRepository) ListActivities(ctx context.Context) ([]*model.Activity, error) {
	return listCollection[model.Activity](ctx, m.database.Collection(activitiesCollection), -1)
}

func (m *mongoRepository) CreateActivity(ctx context.Context, activity *model.Activity) error {
	if activity.Timestamp.IsZero() {
		activity.Timestamp = time.Now().UTC()
	}
	return m.insert(ctx, activitiesCollection, func(id int64) { activity.ID = id }, activity)
}
