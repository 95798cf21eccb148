package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shoplane/storefront-system/internal/core/domain"
	"github.com/shoplane/storefront-system/internal/core/ports"
)

const collectionOrders = "orders"

type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(collectionOrders)}
}

type orderItemDoc struct {
	ProductID string `bson:"product_id"`
	Name      string `bson:"name"`
	UnitPrice string `bson:"unit_price"`
	Quantity  int    `bson:"quantity"`
	Image     string `bson:"image,omitempty"`
}

type addressDoc struct {
	Street  string `bson:"street"`
	City    string `bson:"city"`
	State   string `bson:"state"`
	ZipCode string `bson:"zip_code"`
	Phone   string `bson:"phone"`
}

type orderDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Number        string             `bson:"number"`
	UserID        string             `bson:"user_id"`
	CustomerName  string             `bson:"customer_name"`
	CustomerEmail string             `bson:"customer_email"`
	Items         []orderItemDoc     `bson:"items"`
	TotalAmount   string             `bson:"total_amount"`
	Address       addressDoc         `bson:"shipping_address"`
	PaymentMethod string             `bson:"payment_method"`
	Status        string             `bson:"status"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func toOrderDoc(o *domain.Order) orderDoc {
	items := make([]orderItemDoc, len(o.Items))
	for i, item := range o.Items {
		items[i] = orderItemDoc{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice.String(),
			Quantity:  item.Quantity,
			Image:     item.Image,
		}
	}
	return orderDoc{
		Number:        o.Number,
		UserID:        o.UserID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Items:         items,
		TotalAmount:   o.TotalAmount.String(),
		Address: addressDoc{
			Street:  o.Address.Street,
			City:    o.Address.City,
			State:   o.Address.State,
			ZipCode: o.Address.ZipCode,
			Phone:   o.Address.Phone,
		},
		PaymentMethod: o.PaymentMethod,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func (d orderDoc) toDomain() (*domain.Order, error) {
	total, err := decimal.NewFromString(d.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("decode order total %q: %w", d.TotalAmount, err)
	}
	items := make([]domain.OrderItem, len(d.Items))
	for i, item := range d.Items {
		price, err := decimal.NewFromString(item.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("decode order item price %q: %w", item.UnitPrice, err)
		}
		items[i] = domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: price,
			Quantity:  item.Quantity,
			Image:     item.Image,
		}
	}
	return &domain.Order{
		ID:            d.ID.Hex(),
		Number:        d.Number,
		UserID:        d.UserID,
		CustomerName:  d.CustomerName,
		CustomerEmail: d.CustomerEmail,
		Items:         items,
		TotalAmount:   total,
		Address: domain.ShippingAddress{
			Street:  d.Address.Street,
			City:    d.Address.City,
			State:   d.Address.State,
			ZipCode: d.Address.ZipCode,
			Phone:   d.Address.Phone,
		},
		PaymentMethod: d.PaymentMethod,
		Status:        domain.OrderStatus(d.Status),
		CreatedAt:     d.CreatedAt.UTC(),
		UpdatedAt:     d.UpdatedAt.UTC(),
	}, nil
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toOrderDoc(o))
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	created := *o
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	var d orderDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return d.toDomain()
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]*domain.Order, error) {
	return r.list(ctx, bson.M{})
}

func (r *OrderRepository) list(ctx context.Context, filter bson.M) ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cur.Close(ctx)

	var orders []*domain.Order
	for cur.Next(ctx) {
		var d orderDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		o, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, cur.Err()
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrOrderNotFound
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// Stats groups orders by calendar month. Totals are stored as decimal
// strings, so the revenue sum is computed here after conversion rather than
// inside the pipeline.
func (r *OrderRepository) Stats(ctx context.Context) ([]ports.MonthlyStat, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$project", Value: bson.M{
			"month":        bson.M{"$dateToString": bson.M{"format": "%Y-%m", "date": "$created_at"}},
			"total_amount": 1,
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":     "$month",
			"orders":  bson.M{"$sum": 1},
			"amounts": bson.M{"$push": "$total_amount"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate order stats: %w", err)
	}
	defer cur.Close(ctx)

	var stats []ports.MonthlyStat
	for cur.Next(ctx) {
		var row struct {
			Month   string   `bson:"_id"`
			Orders  int64    `bson:"orders"`
			Amounts []string `bson:"amounts"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode order stats: %w", err)
		}

		revenue := decimal.Zero
		for _, a := range row.Amounts {
			amount, err := decimal.NewFromString(a)
			if err != nil {
				return nil, fmt.Errorf("decode order amount %q: %w", a, err)
			}
			revenue = revenue.Add(amount)
		}
		stats = append(stats, ports.MonthlyStat{Month: row.Month, Orders: row.Orders, Revenue: revenue})
	}
	return stats, cur.Err()
}

// EnsureIndexes creates the user and recency indexes used by order listings.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "number", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
