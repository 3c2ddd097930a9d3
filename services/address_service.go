package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/beratazgun/ecommerce-backend-api/cache"
	"github.com/beratazgun/ecommerce-backend-api/models"
	"github.com/beratazgun/ecommerce-backend-api/utils"
)

// AddressService persists addresses in the document store and mirrors them
// into a per-user cache hash (field per address id) so profile pages read
// them without a database round trip. The mirror expires after ten days;
// every write resets the clock.
type AddressService struct {
	db    *mongo.Database
	store cache.Store
}

func NewAddressService(db *mongo.Database, store cache.Store) *AddressService {
	return &AddressService{db: db, store: store}
}

// Create stores a new address for the owner and mirrors it into the cache.
func (s *AddressService) Create(ctx context.Context, userID primitive.ObjectID, role string, req models.AddressRequest) (*models.Address, error) {
	addr := models.Address{
		ID:           primitive.NewObjectID(),
		AddressTitle: req.AddressTitle,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		City:         req.City,
		Street:       req.Street,
		District:     req.District,
		Neighborhood: req.Neighborhood,
		Address:      req.Address,
	}
	if role == models.RoleSeller {
		addr.SellerID = &userID
	} else {
		addr.CustomerID = &userID
	}

	if _, err := s.db.Collection(models.Address{}.Collection()).InsertOne(ctx, addr); err != nil {
		return nil, fmt.Errorf("insert address: %w", err)
	}
	if err := s.mirror(ctx, userID, addr); err != nil {
		return nil, err
	}
	return &addr, nil
}

// List returns the owner's addresses from the cache mirror when present,
// otherwise from the document store, rebuilding the mirror on the way.
func (s *AddressService) List(ctx context.Context, userID primitive.ObjectID, role string) ([]models.Address, error) {
	fields, err := s.store.HGetAll(ctx, cache.AddressKey(userID.Hex()))
	if err != nil {
		return nil, fmt.Errorf("read address cache: %w", err)
	}
	if len(fields) > 0 {
		addrs := make([]models.Address, 0, len(fields))
		for _, raw := range fields {
			var addr models.Address
			if err := json.Unmarshal([]byte(raw), &addr); err != nil {
				return nil, fmt.Errorf("decode cached address: %w", err)
			}
			addrs = append(addrs, addr)
		}
		return addrs, nil
	}

	cursor, err := s.db.Collection(models.Address{}.Collection()).Find(ctx, ownerFilter(userID, role))
	if err != nil {
		return nil, fmt.Errorf("find addresses: %w", err)
	}
	defer cursor.Close(ctx)

	var addrs []models.Address
	if err := cursor.All(ctx, &addrs); err != nil {
		return nil, fmt.Errorf("decode addresses: %w", err)
	}
	for _, addr := range addrs {
		if err := s.mirror(ctx, userID, addr); err != nil {
			return nil, err
		}
	}
	return addrs, nil
}

// Update patches an owned address and refreshes its cache mirror.
func (s *AddressService) Update(ctx context.Context, userID primitive.ObjectID, role string, req models.UpdateAddressRequest) (*models.Address, error) {
	set := bson.M{}
	patch := map[string]*string{
		"addressTitle": req.AddressTitle,
		"firstName":    req.FirstName,
		"lastName":     req.LastName,
		"phone":        req.Phone,
		"city":         req.City,
		"street":       req.Street,
		"district":     req.District,
		"neighborhood": req.Neighborhood,
		"address":      req.Address,
	}
	for field, value := range patch {
		if value != nil {
			set[field] = *value
		}
	}
	if len(set) == 0 {
		return nil, utils.BadRequest("Nothing to update")
	}

	filter := ownerFilter(userID, role)
	filter["_id"] = req.AddressID

	var updated models.Address
	err := s.db.Collection(models.Address{}.Collection()).
		FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After)).
		Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NotFound("Address not found")
	}
	if err != nil {
		return nil, fmt.Errorf("update address: %w", err)
	}

	if err := s.mirror(ctx, userID, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an owned address from the store and its cache mirror.
func (s *AddressService) Delete(ctx context.Context, userID primitive.ObjectID, role string, addressID primitive.ObjectID) error {
	filter := ownerFilter(userID, role)
	filter["_id"] = addressID

	res, err := s.db.Collection(models.Address{}.Collection()).DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	if res.DeletedCount == 0 {
		return utils.NotFound("Address not found")
	}
	if err := s.store.HDel(ctx, cache.AddressKey(userID.Hex()), addressID.Hex()); err != nil {
		return fmt.Errorf("drop address mirror: %w", err)
	}
	return nil
}

func (s *AddressService) mirror(ctx context.Context, userID primitive.ObjectID, addr models.Address) error {
	payload, err := json.Marshal(addr)
	if err != nil {
		return fmt.Errorf("encode address: %w", err)
	}
	key := cache.AddressKey(userID.Hex())
	if err := s.store.HSet(ctx, key, addr.ID.Hex(), string(payload)); err != nil {
		return fmt.Errorf("mirror address: %w", err)
	}
	if err := s.store.Expire(ctx, key, cache.AddressTTL); err != nil {
		return fmt.Errorf("expire address mirror: %w", err)
	}
	return nil
}

func ownerFilter(userID primitive.ObjectID, role string) bson.M {
	if role == models.RoleSeller {
		return bson.M{"sellerId": userID}
	}
	return bson.M{"customerId": userID}
}
