package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/userportal/account-system/internal/core/domain"
)

const (
	accountCollection = "accounts"
	usernameIndex     = "uniq_username"
	emailIndex        = "uniq_email"
)

type MongoAccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *MongoAccountRepository {
	return &MongoAccountRepository{coll: db.Collection(accountCollection)}
}

type mongoAccount struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	FullName     string             `bson:"full_name"`
	Role         string             `bson:"role"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func toDoc(a *domain.Account) mongoAccount {
	return mongoAccount{
		Username:     a.Username,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		FullName:     a.FullName,
		Role:         string(a.Role),
		CreatedAt:    a.CreatedAt.Unix(),
		UpdatedAt:    a.UpdatedAt.Unix(),
	}
}

func (ma mongoAccount) toDomain() *domain.Account {
	return &domain.Account{
		ID:           ma.ID.Hex(),
		Username:     ma.Username,
		Email:        ma.Email,
		PasswordHash: ma.PasswordHash,
		FullName:     ma.FullName,
		Role:         domain.Role(ma.Role),
		CreatedAt:    unixToTime(ma.CreatedAt),
		UpdatedAt:    unixToTime(ma.UpdatedAt),
	}
}

// Save inserts the account when it carries no ID yet, otherwise replaces
// the stored document. Duplicate-key violations are mapped to the typed
// domain error for whichever unique index was hit, so a concurrent insert
// that slipped past the service's pre-checks still surfaces correctly.
func (r *MongoAccountRepository) Save(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	doc := toDoc(account)

	if account.ID == "" {
		res, err := r.coll.InsertOne(ctx, doc)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, duplicateError(err)
			}
			return nil, fmt.Errorf("insert account: %w", err)
		}
		oid, _ := res.InsertedID.(primitive.ObjectID)
		created := *account
		created.ID = oid.Hex()
		return &created, nil
	}

	oid, err := primitive.ObjectIDFromHex(account.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid account id %q: %w", account.ID, err)
	}
	doc.ID = oid

	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateError(err)
		}
		return nil, fmt.Errorf("update account: %w", err)
	}
	return account, nil
}

func (r *MongoAccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var ma mongoAccount
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *MongoAccountRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"username": username}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count by username: %w", err)
	}
	return n > 0, nil
}

func (r *MongoAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count by email: %w", err)
	}
	return n > 0, nil
}

// FindAll returns every account sorted by _id ascending. ObjectIDs embed
// the creation timestamp, so this is insertion order.
func (r *MongoAccountRepository) FindAll(ctx context.Context) ([]*domain.Account, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find accounts: %w", err)
	}
	defer cur.Close(ctx)

	var accounts []*domain.Account
	for cur.Next(ctx) {
		var ma mongoAccount
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode account: %w", err)
		}
		accounts = append(accounts, ma.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	return accounts, nil
}

// duplicateError picks the domain error matching the violated index. The
// driver surfaces the index name inside the write error message.
func duplicateError(err error) error {
	if strings.Contains(err.Error(), emailIndex) {
		return domain.ErrDuplicateEmail
	}
	return domain.ErrDuplicateUsername
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
