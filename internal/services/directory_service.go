package services

import (
	"context"
	"errors"
	"time"

	"github.com/yukikurage/volunteer-directory-api/internal/cache"
	"github.com/yukikurage/volunteer-directory-api/internal/metrics"
	"github.com/yukikurage/volunteer-directory-api/internal/models"
	"github.com/yukikurage/volunteer-directory-api/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// DirectoryService is the entry point for every volunteer directory operation
type DirectoryService struct {
	volunteers     repository.VolunteerRepository
	social         repository.EntryRepository[models.VolunteerSocial]
	contacts       repository.EntryRepository[models.VolunteerContact]
	paymentOptions repository.EntryRepository[models.VolunteerPaymentOption]
	query          *QueryEngine
	metrics        *metrics.Metrics
	log            *zap.Logger

	Cities           *LookupService[models.City]
	Activities       *LookupService[models.Activity]
	SocialProviders  *LookupService[models.SocialProvider]
	PaymentProviders *LookupService[models.PaymentProvider]
	ContactProviders *LookupService[models.ContactProvider]
}

// Options tunes the directory service
type Options struct {
	// TrimOverfetch drops the next-page probe row from search results
	TrimOverfetch bool
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(
	repos repository.Repositories,
	lookupCache cache.LookupCache,
	m *metrics.Metrics,
	log *zap.Logger,
	opts Options,
) *DirectoryService {
	log = log.Named("directory")

	return &DirectoryService{
		volunteers:     repos.Volunteers,
		social:         repos.Social,
		contacts:       repos.Contacts,
		paymentOptions: repos.PaymentOptions,
		query:          NewQueryEngine(repos.Volunteers, opts.TrimOverfetch),
		metrics:        m,
		log:            log,

		Cities:           newLookupService("cities", repos.Cities, lookupCache, m, log, validateCity),
		Activities:       newLookupService("activities", repos.Activities, lookupCache, m, log, validateActivity),
		SocialProviders:  newLookupService("social_providers", repos.SocialProviders, lookupCache, m, log, validateSocial),
		PaymentProviders: newLookupService("payment_providers", repos.PaymentProviders, lookupCache, m, log, validatePayment),
		ContactProviders: newLookupService("contact_providers", repos.ContactProviders, lookupCache, m, log, validateContact),
	}
}

// SearchResult is a page of verified volunteers plus the unfiltered total
type SearchResult struct {
	SearchPage
	TotalCount  int64
	StartCursor *string
}

// Search runs the page query and the total count concurrently
func (s *DirectoryService) Search(ctx context.Context, input SearchInput) (*SearchResult, error) {
	defer s.metrics.ObserveSearch(time.Now())

	if input.Offset < 0 {
		return nil, ErrInvalidOffset
	}

	var (
		page  *SearchPage
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		page, err = s.query.Search(gctx, input)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.query.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storeFailure(s.log, s.metrics, "search", err)
	}

	result := &SearchResult{
		SearchPage: *page,
		TotalCount: total,
	}
	if input.StartCursor != "" {
		startCursor := input.StartCursor
		result.StartCursor = &startCursor
	}
	return result, nil
}

// GetVolunteersCount counts verified volunteers
func (s *DirectoryService) GetVolunteersCount(ctx context.Context) (int64, error) {
	count, err := s.query.Count(ctx)
	if err != nil {
		return 0, storeFailure(s.log, s.metrics, "count_volunteers", err)
	}
	return count, nil
}

// GetVolunteersByIDs returns the volunteers whose id is in ids, in any status
func (s *DirectoryService) GetVolunteersByIDs(ctx context.Context, ids []string) ([]models.Volunteer, error) {
	volunteers, err := s.volunteers.FindByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, storeFailure(s.log, s.metrics, "get_volunteers", err)
	}
	return volunteers, nil
}

// GetVolunteerByAuthID returns the profile owned by authID
func (s *DirectoryService) GetVolunteerByAuthID(ctx context.Context, authID string) (*models.Volunteer, error) {
	volunteer, err := s.volunteers.FindByAuthID(ctx, authID)
	if err != nil {
		return nil, s.volunteerLookupError("get_volunteer_by_auth_id", err)
	}
	return volunteer, nil
}

// GetRequestedVolunteers lists volunteers awaiting moderation, oldest first
func (s *DirectoryService) GetRequestedVolunteers(ctx context.Context) ([]models.Volunteer, error) {
	volunteers, err := s.volunteers.ListByStatus(ctx, models.StatusRequested)
	if err != nil {
		return nil, storeFailure(s.log, s.metrics, "get_requested", err)
	}
	return volunteers, nil
}

// ChangeVolunteerStatus applies a moderation decision. The target is
// validated before the store is touched.
func (s *DirectoryService) ChangeVolunteerStatus(ctx context.Context, id, target string) (*models.Volunteer, error) {
	status, err := ParseModerationTarget(target)
	if err != nil {
		return nil, err
	}

	volunteer, err := s.volunteers.SetStatus(ctx, id, status)
	if err != nil {
		return nil, s.volunteerLookupError("change_status", err)
	}

	s.metrics.IncrementStatusChange(string(status))
	s.log.Info("volunteer status changed",
		zap.String("volunteer_id", id),
		zap.String("status", string(status)),
	)
	return volunteer, nil
}

// HideVolunteerProfile hides the profile owned by authID from every state
func (s *DirectoryService) HideVolunteerProfile(ctx context.Context, authID string) (*models.Volunteer, error) {
	current, err := s.volunteers.FindByAuthID(ctx, authID)
	if err != nil {
		return nil, s.volunteerLookupError("hide_profile", err)
	}

	volunteer, err := s.volunteers.SetStatus(ctx, current.ID, hiddenTarget)
	if err != nil {
		return nil, s.volunteerLookupError("hide_profile", err)
	}

	s.metrics.IncrementStatusChange(string(hiddenTarget))
	s.log.Info("volunteer profile hidden", zap.String("volunteer_id", volunteer.ID))
	return volunteer, nil
}

// GetVolunteerSocial lists live social links of the given volunteers
func (s *DirectoryService) GetVolunteerSocial(ctx context.Context, volunteerIDs []string) ([]models.VolunteerSocial, error) {
	entries, err := s.social.ListByOwners(ctx, uniqueIDs(volunteerIDs))
	if err != nil {
		return nil, storeFailure(s.log, s.metrics, "get_social", err)
	}
	return entries, nil
}

// GetVolunteerContacts lists live contacts of the given volunteers
func (s *DirectoryService) GetVolunteerContacts(ctx context.Context, volunteerIDs []string) ([]models.VolunteerContact, error) {
	entries, err := s.contacts.ListByOwners(ctx, uniqueIDs(volunteerIDs))
	if err != nil {
		return nil, storeFailure(s.log, s.metrics, "get_contacts", err)
	}
	return entries, nil
}

// GetVolunteerPaymentOptions lists live payment options of the given volunteers
func (s *DirectoryService) GetVolunteerPaymentOptions(ctx context.Context, volunteerIDs []string) ([]models.VolunteerPaymentOption, error) {
	entries, err := s.paymentOptions.ListByOwners(ctx, uniqueIDs(volunteerIDs))
	if err != nil {
		return nil, storeFailure(s.log, s.metrics, "get_payment_options", err)
	}
	return entries, nil
}

// EntryHistory is every sub-entity a volunteer ever had
type EntryHistory struct {
	Social         []models.VolunteerSocial
	Contacts       []models.VolunteerContact
	PaymentOptions []models.VolunteerPaymentOption
}

// GetVolunteerEntryHistory lists live and tombstoned entries of one volunteer
func (s *DirectoryService) GetVolunteerEntryHistory(ctx context.Context, volunteerID string) (*EntryHistory, error) {
	if _, err := s.volunteers.FindByID(ctx, volunteerID); err != nil {
		return nil, s.volunteerLookupError("get_entry_history", err)
	}

	var (
		history EntryHistory
		err     error
	)
	if history.Social, err = s.social.ListHistory(ctx, volunteerID); err != nil {
		return nil, storeFailure(s.log, s.metrics, "get_entry_history", err)
	}
	if history.Contacts, err = s.contacts.ListHistory(ctx, volunteerID); err != nil {
		return nil, storeFailure(s.log, s.metrics, "get_entry_history", err)
	}
	if history.PaymentOptions, err = s.paymentOptions.ListHistory(ctx, volunteerID); err != nil {
		return nil, storeFailure(s.log, s.metrics, "get_entry_history", err)
	}
	return &history, nil
}

func (s *DirectoryService) volunteerLookupError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrVolunteerNotFound
	}
	return storeFailure(s.log, s.metrics, operation, err)
}
