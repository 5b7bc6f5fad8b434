package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/user/filmbase/internal/config"
	"github.com/user/filmbase/internal/model"
	"github.com/user/filmbase/internal/utils"
	"golang.org/x/sync/singleflight"
)

// MovieFinder 元数据服务需要的电影查询能力
type MovieFinder interface {
	FindByID(id int) (*model.Movie, error)
}

// Metadata 外部元数据服务返回的补充信息
type Metadata struct {
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterURL   string  `json:"posterUrl"`
	ReleaseDate string  `json:"releaseDate"`
	Runtime     int     `json:"runtime"`
	Rating      float64 `json:"rating"`
}

// MetadataService 第三方电影元数据客户端
type MetadataService struct {
	movies  MovieFinder
	config  *config.Config
	client  *http.Client
	group   singleflight.Group
	details *gocache.Cache
	search  *utils.TTLCache[[]searchResult]
}

func NewMetadataService(movies MovieFinder, cfg *config.Config) *MetadataService {
	return &MetadataService{
		movies:  movies,
		config:  cfg,
		client:  &http.Client{Timeout: 10 * time.Second},
		details: gocache.New(30*time.Minute, 10*time.Minute),
		search:  utils.NewTTLCache[[]searchResult](1000, time.Hour),
	}
}

// ErrMovieNotFound 目录中不存在该电影
var ErrMovieNotFound = fmt.Errorf("movie not found")

// ForMovie 查询目录电影在外部元数据服务中的补充信息。
// 同一电影的并发请求用 singleflight 合并。
func (s *MetadataService) ForMovie(ctx context.Context, movieID int) (*Metadata, error) {
	movie, err := s.movies.FindByID(movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	key := strconv.Itoa(movieID)
	val, err, _ := s.group.Do(key, func() (interface{}, error) {
		return s.lookup(ctx, movie)
	})
	if err != nil {
		return nil, err
	}
	return val.(*Metadata), nil
}

type searchResult struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

type detailsResponse struct {
	Runtime int `json:"runtime"`
}

func (s *MetadataService) lookup(ctx context.Context, movie *model.Movie) (*Metadata, error) {
	results, err := s.searchByTitle(ctx, movie.Title, movie.ReleaseYear)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no metadata found for %q", movie.Title)
	}

	first := results[0]
	meta := &Metadata{
		Title:       first.Title,
		Overview:    first.Overview,
		ReleaseDate: first.ReleaseDate,
		Rating:      first.VoteAverage,
	}
	if first.PosterPath != "" {
		meta.PosterURL = "https://image.tmdb.org/t/p/w500" + first.PosterPath
	}

	details, err := s.fetchDetails(ctx, first.ID)
	if err == nil && details != nil {
		meta.Runtime = details.Runtime
	}

	return meta, nil
}

// searchByTitle 按标题+年份搜索，结果在 LRU 缓存中保留一小时
func (s *MetadataService) searchByTitle(ctx context.Context, title string, year int) ([]searchResult, error) {
	cacheKey := fmt.Sprintf("%s|%d", title, year)
	if cached, ok := s.search.Get(cacheKey); ok {
		return cached, nil
	}

	endpoint := fmt.Sprintf("%s/search/movie?query=%s&year=%d",
		s.config.MetadataBaseURL, url.QueryEscape(title), year)

	var result searchResponse
	if err := s.getJSON(ctx, endpoint, &result); err != nil {
		return nil, err
	}

	s.search.Set(cacheKey, result.Results)
	return result.Results, nil
}

// fetchDetails 详情按外部 ID 缓存 30 分钟
func (s *MetadataService) fetchDetails(ctx context.Context, externalID int) (*detailsResponse, error) {
	cacheKey := strconv.Itoa(externalID)
	if cached, found := s.details.Get(cacheKey); found {
		return cached.(*detailsResponse), nil
	}

	endpoint := fmt.Sprintf("%s/movie/%d", s.config.MetadataBaseURL, externalID)

	var result detailsResponse
	if err := s.getJSON(ctx, endpoint, &result); err != nil {
		return nil, err
	}

	s.details.Set(cacheKey, &result, gocache.DefaultExpiration)
	return &result, nil
}

func (s *MetadataService) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.config.MetadataToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("metadata provider returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
