package usecase

import (
	"context"
	"errors"

	"github.com/annonceo/marketplace-service/internal/marketplace/domain"
	"github.com/annonceo/marketplace-service/internal/platform/logger"
)

type FavoriteUsecase struct {
	favoriteRepo domain.FavoriteRepository
	listingRepo  domain.ListingRepository
	logger       *logger.Logger
}

func NewFavoriteUsecase(favoriteRepo domain.FavoriteRepository, listingRepo domain.ListingRepository, log *logger.Logger) *FavoriteUsecase {
	return &FavoriteUsecase{favoriteRepo: favoriteRepo, listingRepo: listingRepo, logger: log}
}

func (uc *FavoriteUsecase) AddFavorite(ctx context.Context, userID, listingID string) error {
	if _, err := uc.listingRepo.FindByID(ctx, listingID); err != nil {
		return err
	}
	return uc.favoriteRepo.Add(ctx, &domain.Favorite{UserID: userID, ListingID: listingID})
}

func (uc *FavoriteUsecase) RemoveFavorite(ctx context.Context, userID, listingID string) error {
	return uc.favoriteRepo.Remove(ctx, userID, listingID)
}

// ListFavorites resolves the user's favorites to full listings. Favorites
// whose listing has disappeared are skipped.
func (uc *FavoriteUsecase) ListFavorites(ctx context.Context, userID string) ([]*domain.Listing, error) {
	favorites, err := uc.favoriteRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	listings := make([]*domain.Listing, 0, len(favorites))
	for _, fav := range favorites {
		listing, err := uc.listingRepo.FindByID(ctx, fav.ListingID)
		if errors.Is(err, domain.ErrListingNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, nil
}
