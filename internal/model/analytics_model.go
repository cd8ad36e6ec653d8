package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductSales is one row of the per-product sales aggregation over order
// line items.
type ProductSales struct {
	ProductID      primitive.ObjectID `bson:"_id" json:"productId"`
	ProductName    string             `bson:"productName" json:"productName"`
	TotalSales     int                `bson:"totalSales" json:"totalSales"`
	TotalRevenue   float64            `bson:"totalRevenue" json:"totalRevenue"`
	OrderFrequency int                `bson:"orderFrequency" json:"orderFrequency"`
}

// RecentOrder is the projection of an order shown on the analytics dashboard.
type RecentOrder struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	CustomerName string             `bson:"customerName" json:"customerName"`
	TotalAmount  float64            `bson:"totalAmount" json:"totalAmount"`
	Status       OrderStatus        `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

type AnalyticsOverview struct {
	TotalOrders       int64          `json:"totalOrders"`
	TotalRevenue      float64        `json:"totalRevenue"`
	AverageOrderValue float64        `json:"averageOrderValue"`
	TotalUnitsSold    int            `json:"totalUnitsSold"`
	ProductAnalytics  []ProductSales `json:"productAnalytics"`
	RecentOrders      []RecentOrder  `json:"recentOrders"`
}
