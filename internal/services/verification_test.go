package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cardcast-dev/cardcast/internal/models"
	"github.com/cardcast-dev/cardcast/internal/types"
)

func newVerificationFixture(t *testing.T) (*VerificationService, *CardService, *TeamService, *models.User, *models.Team) {
	t.Helper()

	db := newTestDB(t)
	teams := NewTeamService(db)
	cards := NewCardService(db, teams)
	verifications := NewVerificationService(db, teams, nil)
	admin := createTestUser(t, db, "alice")

	team, err := teams.Create(admin.ID, "The Oracles", nil)
	require.NoError(t, err)

	return verifications, cards, teams, admin, team
}

func TestVerifyPredictionRecordsVerdict(t *testing.T) {
	verifications, cards, _, admin, team := newVerificationFixture(t)

	card, err := cards.Create(admin.ID, team.ID, 2025)
	require.NoError(t, err)

	target := card.Predictions[4]

	verified, err := verifications.VerifyPrediction(card.ID, target.ID, admin.ID, true)
	require.NoError(t, err)
	require.Equal(t, types.StatusCorrect, verified.Status)
	require.NotNil(t, verified.VerifiedByID)
	require.Equal(t, admin.ID, *verified.VerifiedByID)
	require.NotNil(t, verified.VerifiedAt)

	incorrect, err := verifications.VerifyPrediction(card.ID, card.Predictions[5].ID, admin.ID, false)
	require.NoError(t, err)
	require.Equal(t, types.StatusIncorrect, incorrect.Status)
}

func TestVerifyPredictionRequiresAdminRole(t *testing.T) {
	verifications, cards, teams, admin, team := newVerificationFixture(t)
	member := createTestUser(t, cards.db, "bob")

	_, err := teams.Join(team.ID, member.ID)
	require.NoError(t, err)

	card, err := cards.Create(admin.ID, team.ID, 2025)
	require.NoError(t, err)

	_, err = verifications.VerifyPrediction(card.ID, card.Predictions[0].ID, member.ID, true)
	require.ErrorIs(t, err, ErrNotTeamAdmin)

	outsider := createTestUser(t, cards.db, "mallory")
	_, err = verifications.VerifyPrediction(card.ID, card.Predictions[0].ID, outsider.ID, true)
	require.ErrorIs(t, err, ErrNotTeamMember)
}

func TestVerifyPredictionWrongCard(t *testing.T) {
	verifications, cards, _, admin, team := newVerificationFixture(t)

	first, err := cards.Create(admin.ID, team.ID, 2025)
	require.NoError(t, err)

	second, err := cards.Create(admin.ID, team.ID, 2026)
	require.NoError(t, err)

	_, err = verifications.VerifyPrediction(first.ID, second.Predictions[0].ID, admin.ID, true)
	require.ErrorIs(t, err, ErrPredictionNotFound)
}

func TestSubmitEvidenceIsAppendOnly(t *testing.T) {
	verifications, cards, _, admin, team := newVerificationFixture(t)

	card, err := cards.Create(admin.ID, team.ID, 2025)
	require.NoError(t, err)

	target := card.Predictions[0]

	// The same URL twice on purpose: submissions are never deduplicated.
	_, err = verifications.SubmitEvidence(card.ID, target.ID, admin.ID, "https://news.example.com/article", "first take")
	require.NoError(t, err)

	_, err = verifications.SubmitEvidence(card.ID, target.ID, admin.ID, "https://news.example.com/article", "second take")
	require.NoError(t, err)

	evidence, err := verifications.ListEvidence(card.ID, target.ID, admin.ID)
	require.NoError(t, err)
	require.Len(t, evidence, 2)

	for _, item := range evidence {
		require.Equal(t, target.ID, item.PredictionID)
		require.Equal(t, admin.ID, item.SubmittedByID)
		require.Equal(t, "https://news.example.com/article", item.EvidenceURL)
	}
}

func TestSubmitEvidenceRequiresMembership(t *testing.T) {
	verifications, cards, _, admin, team := newVerificationFixture(t)
	outsider := createTestUser(t, cards.db, "mallory")

	card, err := cards.Create(admin.ID, team.ID, 2025)
	require.NoError(t, err)

	_, err = verifications.SubmitEvidence(card.ID, card.Predictions[0].ID, outsider.ID, "https://example.com", "")
	require.ErrorIs(t, err, ErrNotTeamMember)
}

// Full lifecycle: fill a card, finalize it, verify every slot.
func TestCardLifecycleRoundTrip(t *testing.T) {
	verifications, cards, _, admin, team := newVerificationFixture(t)

	card, err := cards.Create(admin.ID, team.ID, 2025)
	require.NoError(t, err)

	fillQuota(t, cards, card.ID, admin.ID, map[string]int{
		types.CategoryPolitics:  6,
		types.CategoryEconomics: 6,
		types.CategorySociety:   6,
		types.CategoryWildcard:  7,
	})

	require.NoError(t, cards.Finalize(card.ID, admin.ID))

	finalized, err := cards.GetForUser(card.ID, admin.ID)
	require.NoError(t, err)
	require.True(t, finalized.IsFinalized)

	for i, prediction := range finalized.Predictions {
		_, err := verifications.VerifyPrediction(card.ID, prediction.ID, admin.ID, i%2 == 0)
		require.NoError(t, err)
	}

	verified, err := cards.GetForUser(card.ID, admin.ID)
	require.NoError(t, err)

	for _, prediction := range verified.Predictions {
		require.NotEqual(t, types.StatusPending, prediction.Status)
		require.NotNil(t, prediction.VerifiedByID)
		require.Equal(t, admin.ID, *prediction.VerifiedByID)
		require.NotNil(t, prediction.VerifiedAt)
	}
}
