package service

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/northwestmeats/storefront/internal/infra/repository"
	"github.com/northwestmeats/storefront/internal/model"
)

// In-memory stand-ins for the mongodb repositories. They honor the same
// contracts, including the atomic floor check on DecrementStock.

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*model.Product
}

func newFakeProductRepo(products ...*model.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[string]*model.Product)}
	for _, p := range products {
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		copied := *p
		repo.products[p.ID.Hex()] = &copied
	}
	return repo
}

func (r *fakeProductRepo) List(ctx context.Context) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) Get(ctx context.Context, id string) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProductRepo) Create(ctx context.Context, product *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	copied := *product
	r.products[product.ID.Hex()] = &copied
	return nil
}

func (r *fakeProductRepo) Update(ctx context.Context, id string, update repository.ProductUpdate) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Price != nil {
		p.Price = *update.Price
	}
	if update.Description != nil {
		p.Description = *update.Description
	}
	if update.Image != nil {
		p.Image = *update.Image
	}
	if update.Stock != nil {
		p.Stock = *update.Stock
	}
	if update.Available != nil {
		p.Available = *update.Available
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) DecrementStock(ctx context.Context, id string, quantity int) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if p.Stock < quantity {
		return nil, repository.ErrStockConflict
	}
	p.Stock -= quantity
	copied := *p
	return &copied, nil
}

func (r *fakeProductRepo) IncrementStock(ctx context.Context, id string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.Stock += quantity
	return nil
}

func (r *fakeProductRepo) stock(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.products[id].Stock
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*model.Order
	seq    []string
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*model.Order)}
}

func (r *fakeOrderRepo) List(ctx context.Context) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Order, 0, len(r.seq))
	for i := len(r.seq) - 1; i >= 0; i-- {
		out = append(out, *r.orders[r.seq[i]])
	}
	return out, nil
}

func (r *fakeOrderRepo) Get(ctx context.Context, id string) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *o
	return &copied, nil
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	copied := *order
	r.orders[order.ID.Hex()] = &copied
	r.seq = append(r.seq, order.ID.Hex())
	return nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	o.Status = status
	copied := *o
	return &copied, nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.orders, id)
	for i, oid := range r.seq {
		if oid == id {
			r.seq = append(r.seq[:i], r.seq[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeOrderRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.orders)), nil
}

func (r *fakeOrderRepo) TotalRevenue(ctx context.Context) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total float64
	for _, o := range r.orders {
		total += o.TotalAmount
	}
	return total, nil
}

func (r *fakeOrderRepo) TotalUnitsSold(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var units int
	for _, o := range r.orders {
		for _, item := range o.Items {
			units += item.Quantity
		}
	}
	return units, nil
}

func (r *fakeOrderRepo) productSales() map[string]*model.ProductSales {
	sales := make(map[string]*model.ProductSales)
	for _, o := range r.orders {
		for _, item := range o.Items {
			key := item.ProductID.Hex()
			row, ok := sales[key]
			if !ok {
				row = &model.ProductSales{ProductID: item.ProductID, ProductName: item.Name}
				sales[key] = row
			}
			row.TotalSales += item.Quantity
			row.TotalRevenue += item.Price * float64(item.Quantity)
			row.OrderFrequency++
		}
	}
	return sales
}

func (r *fakeOrderRepo) ProductSales(ctx context.Context) ([]model.ProductSales, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := make([]model.ProductSales, 0)
	for _, row := range r.productSales() {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].TotalSales > rows[j].TotalSales })
	return rows, nil
}

func (r *fakeOrderRepo) ProductSalesByID(ctx context.Context, productID string) (*model.ProductSales, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.productSales()[productID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *row
	return &copied, nil
}

func (r *fakeOrderRepo) Recent(ctx context.Context, limit int) ([]model.RecentOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.RecentOrder, 0, limit)
	for i := len(r.seq) - 1; i >= 0 && len(out) < limit; i-- {
		o := r.orders[r.seq[i]]
		out = append(out, model.RecentOrder{
			ID:           o.ID,
			CustomerName: o.CustomerName,
			TotalAmount:  o.TotalAmount,
			Status:       o.Status,
			CreatedAt:    o.CreatedAt,
		})
	}
	return out, nil
}

type fakeAdminRepo struct {
	mu     sync.Mutex
	admins map[string]*model.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*model.Admin)}
}

func (r *fakeAdminRepo) Create(ctx context.Context, admin *model.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.Username == admin.Username || a.Email == admin.Email {
			return repository.ErrDuplicateKey
		}
	}
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	copied := *admin
	r.admins[admin.ID.Hex()] = &copied
	return nil
}

func (r *fakeAdminRepo) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.Username == username {
			copied := *a
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeAdminRepo) GetByID(ctx context.Context, id string) (*model.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.admins[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAdminRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.Username == username || a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakeContactRepo struct {
	mu        sync.Mutex
	inquiries map[string]*model.ContactInquiry
	seq       []string
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{inquiries: make(map[string]*model.ContactInquiry)}
}

func (r *fakeContactRepo) List(ctx context.Context) ([]model.ContactInquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.ContactInquiry, 0, len(r.seq))
	for i := len(r.seq) - 1; i >= 0; i-- {
		out = append(out, *r.inquiries[r.seq[i]])
	}
	return out, nil
}

func (r *fakeContactRepo) Get(ctx context.Context, id string) (*model.ContactInquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inq, ok := r.inquiries[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *inq
	return &copied, nil
}

func (r *fakeContactRepo) Create(ctx context.Context, inquiry *model.ContactInquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if inquiry.ID.IsZero() {
		inquiry.ID = primitive.NewObjectID()
	}
	copied := *inquiry
	r.inquiries[inquiry.ID.Hex()] = &copied
	r.seq = append(r.seq, inquiry.ID.Hex())
	return nil
}

func (r *fakeContactRepo) Update(ctx context.Context, id string, update repository.ContactUpdate) (*model.ContactInquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inq, ok := r.inquiries[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if update.Status != nil {
		inq.Status = *update.Status
	}
	if update.AdminNotes != nil {
		inq.AdminNotes = *update.AdminNotes
	}
	copied := *inq
	return &copied, nil
}

func (r *fakeContactRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.inquiries[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.inquiries, id)
	for i, iid := range r.seq {
		if iid == id {
			r.seq = append(r.seq[:i], r.seq[i+1:]...)
			break
		}
	}
	return nil
}

type fakeCarouselRepo struct {
	mu     sync.Mutex
	slides map[string]*model.CarouselSlide
}

func newFakeCarouselRepo() *fakeCarouselRepo {
	return &fakeCarouselRepo{slides: make(map[string]*model.CarouselSlide)}
}

func (r *fakeCarouselRepo) listSorted(activeOnly bool) []model.CarouselSlide {
	out := make([]model.CarouselSlide, 0, len(r.slides))
	for _, s := range r.slides {
		if activeOnly && !s.Active {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func (r *fakeCarouselRepo) ListActive(ctx context.Context) ([]model.CarouselSlide, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listSorted(true), nil
}

func (r *fakeCarouselRepo) ListAll(ctx context.Context) ([]model.CarouselSlide, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listSorted(false), nil
}

func (r *fakeCarouselRepo) Create(ctx context.Context, slide *model.CarouselSlide) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if slide.ID.IsZero() {
		slide.ID = primitive.NewObjectID()
	}
	copied := *slide
	r.slides[slide.ID.Hex()] = &copied
	return nil
}

func (r *fakeCarouselRepo) Update(ctx context.Context, id string, update repository.CarouselUpdate) (*model.CarouselSlide, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.slides[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if update.Title != nil {
		s.Title = *update.Title
	}
	if update.Description != nil {
		s.Description = *update.Description
	}
	if update.Image != nil {
		s.Image = *update.Image
	}
	if update.Link != nil {
		s.Link = *update.Link
	}
	if update.Order != nil {
		s.Order = *update.Order
	}
	if update.Active != nil {
		s.Active = *update.Active
	}
	copied := *s
	return &copied, nil
}

func (r *fakeCarouselRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.slides[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.slides, id)
	return nil
}

type fakeMarqueeRepo struct {
	mu    sync.Mutex
	items map[string]*model.MarqueeItem
}

func newFakeMarqueeRepo() *fakeMarqueeRepo {
	return &fakeMarqueeRepo{items: make(map[string]*model.MarqueeItem)}
}

func (r *fakeMarqueeRepo) listSorted(activeOnly bool) []model.MarqueeItem {
	out := make([]model.MarqueeItem, 0, len(r.items))
	for _, item := range r.items {
		if activeOnly && !item.Active {
			continue
		}
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func (r *fakeMarqueeRepo) ListActive(ctx context.Context) ([]model.MarqueeItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listSorted(true), nil
}

func (r *fakeMarqueeRepo) ListAll(ctx context.Context) ([]model.MarqueeItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listSorted(false), nil
}

func (r *fakeMarqueeRepo) Create(ctx context.Context, item *model.MarqueeItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	copied := *item
	r.items[item.ID.Hex()] = &copied
	return nil
}

func (r *fakeMarqueeRepo) Update(ctx context.Context, id string, update repository.MarqueeUpdate) (*model.MarqueeItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if update.Text != nil {
		item.Text = *update.Text
	}
	if update.Order != nil {
		item.Order = *update.Order
	}
	if update.Active != nil {
		item.Active = *update.Active
	}
	copied := *item
	return &copied, nil
}

func (r *fakeMarqueeRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// fakeNotifier records which notifications fired, synchronously.
type fakeNotifier struct {
	mu            sync.Mutex
	confirmations []*model.Order
	statusUpdates []*model.Order
	inquiries     []*model.ContactInquiry
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{}
}

func (n *fakeNotifier) NotifyOrderConfirmation(order *model.Order) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.confirmations = append(n.confirmations, order)
}

func (n *fakeNotifier) NotifyOrderStatusUpdate(order *model.Order) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.statusUpdates = append(n.statusUpdates, order)
}

func (n *fakeNotifier) NotifyInquiryReceived(inquiry *model.ContactInquiry) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.inquiries = append(n.inquiries, inquiry)
}
