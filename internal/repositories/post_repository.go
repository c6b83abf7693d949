package repositories

import (
	"sort"

	"github.com/rayagrigorova/pawfinder/internal/models"
	"gorm.io/gorm"
)

// sizeRank orders dog sizes for sorting. Sizes outside the table rank as 0
// and therefore sort first; this cannot be expressed as a plain ascending
// sort on the stored string, so sorting by size happens in memory.
var sizeRank = map[string]int{
	"XS": 1,
	"S":  2,
	"M":  3,
	"L":  4,
	"XL": 5,
}

// PostRepository defines the interface for adoption post operations
type PostRepository interface {
	CreatePost(post *models.AdoptionPost) error
	GetPostByID(id uint) (*models.AdoptionPost, error)
	UpdatePost(post *models.AdoptionPost) error
	DeletePost(id uint) error
	QueryPosts(filter models.PostFilter) ([]models.AdoptionPost, error)
	GetArchivedPosts() ([]models.AdoptionPost, error)
	GetDistinctBreeds() ([]string, error)
}

type postgresPostRepository struct {
	db *gorm.DB
}

func NewPostgresPostRepository(db *gorm.DB) PostRepository {
	return &postgresPostRepository{db: db}
}

func (r *postgresPostRepository) CreatePost(post *models.AdoptionPost) error {
	return r.db.Create(post).Error
}

func (r *postgresPostRepository) GetPostByID(id uint) (*models.AdoptionPost, error) {
	var post models.AdoptionPost
	if err := r.db.Preload("Shelter").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postgresPostRepository) UpdatePost(post *models.AdoptionPost) error {
	return r.db.Save(post).Error
}

func (r *postgresPostRepository) DeletePost(id uint) error {
	return r.db.Delete(&models.AdoptionPost{}, id).Error
}

// QueryPosts returns the filtered, ordered listing of currently-listed posts.
// The base set is posts with stage active or in_process; completed posts only
// appear in the archive.
func (r *postgresPostRepository) QueryPosts(filter models.PostFilter) ([]models.AdoptionPost, error) {
	query := r.db.Preload("Shelter").
		Where("adoption_stage IN ?", []string{models.StageActive, models.StageInProcess})

	if filter.ShelterID != 0 {
		query = query.Where("shelter_id = ?", filter.ShelterID)
	}
	if filter.Size != "" {
		query = query.Where("size = ?", filter.Size)
	}
	if filter.Breed != "" {
		query = query.Where("LOWER(breed) LIKE LOWER(?)", "%"+filter.Breed+"%")
	}
	if filter.Gender != "" {
		query = query.Where("gender = ?", filter.Gender)
	}

	switch filter.SortBy {
	case "name":
		query = query.Order("name")
	case "age":
		query = query.Order("age")
	}

	var posts []models.AdoptionPost
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}

	if filter.SortBy == "size" {
		sort.SliceStable(posts, func(i, j int) bool {
			return sizeRank[posts[i].Size] < sizeRank[posts[j].Size]
		})
	}

	return posts, nil
}

// GetArchivedPosts returns completed posts only.
func (r *postgresPostRepository) GetArchivedPosts() ([]models.AdoptionPost, error) {
	var posts []models.AdoptionPost
	err := r.db.Preload("Shelter").
		Where("adoption_stage = ?", models.StageCompleted).
		Find(&posts).Error
	return posts, err
}

// GetDistinctBreeds returns the live set of non-empty breed values across all
// posts, regardless of stage. It shrinks when the last post of a breed is
// deleted and grows when a new distinct breed is created.
func (r *postgresPostRepository) GetDistinctBreeds() ([]string, error) {
	var breeds []string
	err := r.db.Model(&models.AdoptionPost{}).
		Where("breed <> ''").
		Distinct("breed").
		Order("breed").
		Pluck("breed", &breeds).Error
	return breeds, err
}
