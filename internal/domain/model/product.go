package model

// Product 商品主檔，建立後不會再變動
type Product struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"` // 最小貨幣單位 (cents)
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
	Category    string `json:"category"`
}
