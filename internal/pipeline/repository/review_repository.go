package repository

import (
	"context"
	"fmt"

	"bank-reviews-insights/internal/entity"
	"bank-reviews-insights/internal/nlp"
	"bank-reviews-insights/internal/pipeline/dto"
	"bank-reviews-insights/pkg/utils"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const insertBatchSize = 500

// ReviewRepository is the store boundary for the two-phase idempotent load.
// Each method runs as one atomic transaction: a failure partway leaves the
// store unchanged.
type ReviewRepository interface {
	// LoadBase upserts referenced banks and inserts base review rows with
	// insert-or-ignore semantics keyed by identity hash. Returns the number
	// of rows attempted, the number actually inserted, and the total store
	// size afterward.
	LoadBase(ctx context.Context, rows []dto.ReviewRow) (attempted, inserted int, total int64, err error)
	// ApplyEnrichment updates only the enrichment columns of stored reviews
	// matched by identity hash and links themes. It never creates review rows.
	ApplyEnrichment(ctx context.Context, rows []dto.EnrichedRow) (*dto.EnrichmentSummary, error)
}

// NewReviewRepository creates a new instance of ReviewRepository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

type reviewRepository struct {
	db *gorm.DB
}

func (r *reviewRepository) LoadBase(ctx context.Context, rows []dto.ReviewRow) (int, int, int64, error) {
	var (
		attempted int
		inserted  int
		total     int64
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		bankIDs, err := upsertBanks(tx, rows)
		if err != nil {
			return err
		}

		reviews := make([]entity.Review, 0, len(rows))
		for _, row := range rows {
			date, err := utils.ParseDate(row.Date)
			if err != nil {
				return fmt.Errorf("row with unparseable date reached the store: %w", err)
			}
			reviews = append(reviews, entity.Review{
				ReviewHash: nlp.ReviewID(row.Bank, row.Review, row.Date, row.Rating, row.Source),
				BankID:     bankIDs[row.Bank],
				ReviewText: row.Review,
				Rating:     row.Rating,
				ReviewDate: date,
				Source:     row.Source,
			})
		}
		attempted = len(reviews)

		if len(reviews) > 0 {
			res := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "review_hash"}},
				DoNothing: true,
			}).CreateInBatches(&reviews, insertBatchSize)
			if res.Error != nil {
				return fmt.Errorf("insert reviews error: %w", res.Error)
			}
			inserted = int(res.RowsAffected)
		}

		return tx.Model(&entity.Review{}).Count(&total).Error
	})
	if err != nil {
		return 0, 0, 0, err
	}
	return attempted, inserted, total, nil
}

func (r *reviewRepository) ApplyEnrichment(ctx context.Context, rows []dto.EnrichedRow) (*dto.EnrichmentSummary, error) {
	summary := &dto.EnrichmentSummary{RowsSeen: len(rows)}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		matchedHashes := make([]string, 0, len(rows))
		hashThemes := make(map[string][]string, len(rows))

		for _, row := range rows {
			hash := nlp.ReviewID(row.Bank, row.Review, row.Date, row.Rating, row.Source)

			res := tx.Model(&entity.Review{}).Where("review_hash = ?", hash).Updates(map[string]interface{}{
				"sentiment_label": row.SentimentLabel,
				"sentiment_score": row.SentimentScore,
				"theme_primary":   row.ThemePrimary,
				"themes":          pq.StringArray(row.Themes),
			})
			if res.Error != nil {
				return fmt.Errorf("update enrichment error: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				summary.Unmatched++
				continue
			}
			summary.Updated++
			matchedHashes = append(matchedHashes, hash)
			if len(row.Themes) > 0 {
				hashThemes[hash] = row.Themes
			}
		}

		if err := r.linkThemes(tx, matchedHashes, hashThemes, summary); err != nil {
			return err
		}

		var total int64
		if err := tx.Model(&entity.Review{}).Count(&total).Error; err != nil {
			return err
		}
		summary.TotalReviews = int(total)

		var enriched int64
		// A review counts as enriched when any enrichment column is set.
		enrichedWhere := "sentiment_label IS NOT NULL OR sentiment_score IS NOT NULL OR theme_primary IS NOT NULL"
		if err := tx.Model(&entity.Review{}).Where(enrichedWhere).Count(&enriched).Error; err != nil {
			return err
		}
		summary.EnrichedReviews = int(enriched)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// linkThemes upserts the theme dictionary and inserts review-theme pairs with
// insert-or-ignore semantics so re-running enrichment never duplicates links.
func (r *reviewRepository) linkThemes(tx *gorm.DB, matchedHashes []string, hashThemes map[string][]string, summary *dto.EnrichmentSummary) error {
	if len(hashThemes) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	themes := make([]entity.Theme, 0)
	for _, names := range hashThemes {
		for _, name := range names {
			if !seen[name] {
				seen[name] = true
				themes = append(themes, entity.Theme{ThemeName: name})
			}
		}
	}
	summary.ThemesSeen = len(themes)

	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "theme_name"}},
		DoNothing: true,
	}).Create(&themes).Error; err != nil {
		return fmt.Errorf("insert themes error: %w", err)
	}

	var allThemes []entity.Theme
	if err := tx.Find(&allThemes).Error; err != nil {
		return err
	}
	themeIDs := make(map[string]uint, len(allThemes))
	for _, t := range allThemes {
		themeIDs[t.ThemeName] = t.ID
	}

	var matched []entity.Review
	if err := tx.Select("review_id", "review_hash").Where("review_hash IN ?", matchedHashes).Find(&matched).Error; err != nil {
		return err
	}
	reviewIDs := make(map[string]uint, len(matched))
	for _, rv := range matched {
		reviewIDs[rv.ReviewHash] = rv.ID
	}

	links := make([]entity.ReviewTheme, 0)
	for hash, names := range hashThemes {
		rid, ok := reviewIDs[hash]
		if !ok {
			continue
		}
		for _, name := range names {
			tid, ok := themeIDs[name]
			if !ok {
				continue
			}
			links = append(links, entity.ReviewTheme{ReviewID: rid, ThemeID: tid})
		}
	}
	summary.LinksAttempted = len(links)

	if len(links) > 0 {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&links, insertBatchSize)
		if res.Error != nil {
			return fmt.Errorf("insert review_themes error: %w", res.Error)
		}
		summary.LinksInserted = int(res.RowsAffected)
	}
	return nil
}

func upsertBanks(tx *gorm.DB, rows []dto.ReviewRow) (map[string]uint, error) {
	seen := make(map[string]bool)
	banks := make([]entity.Bank, 0)
	for _, row := range rows {
		if !seen[row.Bank] {
			seen[row.Bank] = true
			banks = append(banks, entity.Bank{BankName: row.Bank})
		}
	}

	if len(banks) > 0 {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "bank_name"}},
			DoNothing: true,
		}).Create(&banks).Error; err != nil {
			return nil, fmt.Errorf("insert banks error: %w", err)
		}
	}

	var allBanks []entity.Bank
	if err := tx.Find(&allBanks).Error; err != nil {
		return nil, err
	}
	ids := make(map[string]uint, len(allBanks))
	for _, b := range allBanks {
		ids[b.BankName] = b.ID
	}
	return ids, nil
}
