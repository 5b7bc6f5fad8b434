package model

// Watchlist 用户拥有的片单
type Watchlist struct {
	ID     int    `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"size:255;not null"`
	UserID int    `json:"userId" gorm:"not null"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// WatchlistMovie 片单与电影的关联表
type WatchlistMovie struct {
	WatchlistID int `json:"watchlistId" gorm:"primaryKey"`
	MovieID     int `json:"movieId" gorm:"primaryKey"`

	Watchlist *Watchlist `json:"-" gorm:"foreignKey:WatchlistID;constraint:OnDelete:CASCADE"`
	Movie     *Movie     `json:"-" gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE"`
}

// WatchlistSnapshot 写入后重新读取的片单快照
type WatchlistSnapshot struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Movies []Movie `json:"movies"`
}
