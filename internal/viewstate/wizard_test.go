package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizardForwardAndBack(t *testing.T) {
	w := NewWizard()
	assert.Equal(t, StepUpload, w.Step())

	require.NoError(t, w.Continue())
	assert.Equal(t, StepAIProcessing, w.Step())

	require.NoError(t, w.Preview())
	assert.Equal(t, StepPreview, w.Step())
	assert.True(t, w.CanPublish())

	require.NoError(t, w.Back())
	assert.Equal(t, StepUpload, w.Step())
}

func TestWizardRejectsSkips(t *testing.T) {
	w := NewWizard()
	assert.ErrorIs(t, w.Preview(), ErrInvalidTransition)
	assert.ErrorIs(t, w.Back(), ErrInvalidTransition)
	assert.Equal(t, StepUpload, w.Step())

	require.NoError(t, w.Continue())
	assert.ErrorIs(t, w.Continue(), ErrInvalidTransition)
	assert.ErrorIs(t, w.Back(), ErrInvalidTransition)
	assert.Equal(t, StepAIProcessing, w.Step())
}

func marketplace(t *testing.T) *MarketplaceState {
	t.Helper()
	s, err := NewPageState(PageMarketplace)
	require.NoError(t, err)
	return s.(*MarketplaceState)
}

func apply(t *testing.T, s PageState, name, value string) {
	t.Helper()
	require.NoError(t, s.Apply(Action{Name: name, Value: value}))
}

func TestMarketplacePublishClosesAndResets(t *testing.T) {
	s := marketplace(t)

	apply(t, s, ActionUpload, UploadOpen)
	require.True(t, s.UploadOpen())
	assert.Equal(t, StepUpload, s.Upload.Step())

	apply(t, s, ActionWizard, WizardContinue)
	apply(t, s, ActionWizard, WizardPreview)
	apply(t, s, ActionWizard, WizardPublish)
	assert.False(t, s.UploadOpen())

	apply(t, s, ActionUpload, UploadOpen)
	assert.Equal(t, StepUpload, s.Upload.Step())
}

func TestMarketplaceCloseFromAnyStep(t *testing.T) {
	moves := [][]string{
		nil,
		{WizardContinue},
		{WizardContinue, WizardPreview},
	}
	for _, seq := range moves {
		s := marketplace(t)
		apply(t, s, ActionUpload, UploadOpen)
		for _, m := range seq {
			apply(t, s, ActionWizard, m)
		}
		apply(t, s, ActionUpload, UploadClose)
		assert.False(t, s.UploadOpen())

		apply(t, s, ActionUpload, UploadOpen)
		assert.Equal(t, StepUpload, s.Upload.Step())
	}
}

func TestMarketplacePublishOnlyFromPreview(t *testing.T) {
	s := marketplace(t)
	apply(t, s, ActionUpload, UploadOpen)

	err := s.Apply(Action{Name: ActionWizard, Value: WizardPublish})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.True(t, s.UploadOpen())
}

func TestMarketplaceWizardWhileClosed(t *testing.T) {
	s := marketplace(t)
	err := s.Apply(Action{Name: ActionWizard, Value: WizardContinue})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.False(t, s.UploadOpen())
}

func TestMarketplaceModalResetsOnRemount(t *testing.T) {
	c := loggedIn(t, "صائغ سامي")
	require.NoError(t, c.Select(PageMarketplace))
	require.NoError(t, c.Dispatch(Action{Name: ActionUpload, Value: UploadOpen}))
	require.NoError(t, c.Dispatch(Action{Name: ActionWizard, Value: WizardContinue}))

	require.NoError(t, c.Select(PageWallet))
	require.NoError(t, c.Select(PageMarketplace))
	assert.False(t, c.State().(*MarketplaceState).UploadOpen())
}
