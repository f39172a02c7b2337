package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"fitfx-backend-go/internal/models"
)

const usersCollection = "users"

// ErrNotFound is returned when a document does not exist in Firestore.
var ErrNotFound = errors.New("document not found")

// firestoreUserRepository implements UserRepository using Firestore. The
// Firebase Auth UID is the document ID.
type firestoreUserRepository struct {
	client *firestore.Client
}

// NewFirestoreUserRepository creates a new instance of firestoreUserRepository.
func NewFirestoreUserRepository(client *firestore.Client) UserRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for UserRepository.")
	}
	return &firestoreUserRepository{client: client}
}

// Create adds a new user document. CreatedAt/UpdatedAt are populated
// server-side via the serverTimestamp tags.
func (r *firestoreUserRepository) Create(ctx context.Context, user *models.UserProfile) error {
	if user.ID == "" {
		return errors.New("user ID cannot be empty for Create operation")
	}
	_, err := r.client.Collection(usersCollection).Doc(user.ID).Create(ctx, user)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return fmt.Errorf("user with ID '%s' already exists: %w", user.ID, err)
		}
		return fmt.Errorf("failed to create user with ID '%s': %w", user.ID, err)
	}
	return nil
}

// GetByID retrieves a user document by its ID (Firebase Auth UID).
func (r *firestoreUserRepository) GetByID(ctx context.Context, userID string) (*models.UserProfile, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(usersCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("user with ID '%s' not found: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user with ID '%s': %w", userID, err)
	}

	var user models.UserProfile
	if err := docSnap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user data for ID '%s': %w", userID, err)
	}
	user.ID = docSnap.Ref.ID

	return &user, nil
}

// Update merges the profile into the stored document. MergeAll keeps fields
// that are absent from the given struct untouched.
func (r *firestoreUserRepository) Update(ctx context.Context, user *models.UserProfile) error {
	if user.ID == "" {
		return errors.New("user ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(usersCollection).Doc(user.ID).Set(ctx, user, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update user with ID '%s': %w", user.ID, err)
	}
	return nil
}

// UpdateSubscription replaces only the subscription field, leaving the rest
// of the document (wardrobe included) alone.
func (r *firestoreUserRepository) UpdateSubscription(ctx context.Context, userID string, sub *models.Subscription) error {
	if userID == "" {
		return errors.New("userID cannot be empty for UpdateSubscription operation")
	}
	_, err := r.client.Collection(usersCollection).Doc(userID).Update(ctx, []firestore.Update{
		{Path: "subscription", Value: sub},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("user with ID '%s' not found: %w", userID, ErrNotFound)
		}
		return fmt.Errorf("failed to update subscription for user '%s': %w", userID, err)
	}
	return nil
}

// SetWardrobe replaces the wardrobe array in one write. The array is small
// (bounded by the top tier's practical usage) so full replacement is cheaper
// and simpler than element-level surgery.
func (r *firestoreUserRepository) SetWardrobe(ctx context.Context, userID string, wardrobe []models.Garment) error {
	if userID == "" {
		return errors.New("userID cannot be empty for SetWardrobe operation")
	}
	if wardrobe == nil {
		wardrobe = []models.Garment{}
	}
	_, err := r.client.Collection(usersCollection).Doc(userID).Update(ctx, []firestore.Update{
		{Path: "wardrobe", Value: wardrobe},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("user with ID '%s' not found: %w", userID, ErrNotFound)
		}
		return fmt.Errorf("failed to set wardrobe for user '%s': %w", userID, err)
	}
	return nil
}
