package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/companieshouse/chs.go/log"
	"golang.org/x/time/rate"

	"github.com/monext/checkout.sdk.go/builders"
	"github.com/monext/checkout.sdk.go/config"
	"github.com/monext/checkout.sdk.go/gateway"
	"github.com/monext/checkout.sdk.go/models"
	"github.com/monext/checkout.sdk.go/threeds"
	"github.com/monext/checkout.sdk.go/validation"
)

// Update is one state transition delivered to subscribers.
type Update struct {
	State   State
	Session *models.SessionState
}

// Store owns one checkout session. Each session gets its own store; there is
// no shared instance. The gateway snapshot is replaced wholesale on every
// transition and never mutated in place.
type Store struct {
	cfg     *config.Config
	client  gateway.Client
	builder *builders.RequestBuilder
	auth    Authenticator

	mu      sync.Mutex
	token   string
	current *models.SessionState
	busy    bool
	subs    map[int]chan Update
	nextSub int
}

// NewStore creates a store for one session token.
func NewStore(token string, client gateway.Client, auth Authenticator, cfg *config.Config) *Store {
	return &Store{
		cfg:     cfg,
		client:  client,
		builder: builders.NewRequestBuilder(cfg, client),
		auth:    auth,
		token:   token,
		subs:    map[int]chan Update{},
	}
}

// Token returns the session token this store is bound to.
func (s *Store) Token() string {
	return s.token
}

// Current returns the latest session snapshot, nil before the first refresh.
func (s *Store) Current() *models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	snapshot := *s.current
	return &snapshot
}

// State returns the machine state for the latest snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return StateLoading
	}
	return stateFor(s.current.Type)
}

// Busy reports whether a gateway operation is in flight. Refreshes and
// submissions share the flag; a busy session rejects new operations rather
// than queueing them.
func (s *Store) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Subscribe registers for state transitions. The returned cancel func must
// be called when the subscriber goes away. Slow subscribers drop updates
// rather than blocking the session.
func (s *Store) Subscribe() (<-chan Update, func()) {
	ch := make(chan Update, 8)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

// Close tears the session down: the authentication engine is cleaned up and
// all subscriptions are closed.
func (s *Store) Close(ctx context.Context) {
	s.auth.Close(ctx, s.token)

	s.mu.Lock()
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
	s.mu.Unlock()
}

// Refresh fetches the authoritative session state from the gateway. A
// refresh holds the busy flag like a submission does; only one gateway
// operation runs at a time.
func (s *Store) Refresh(ctx context.Context) error {
	if err := s.beginOperation(); err != nil {
		return err
	}
	defer s.endOperation()
	return s.refresh(ctx)
}

func (s *Store) refresh(ctx context.Context) error {
	state, err := s.client.FetchCurrentState(ctx, s.token)
	if err != nil {
		return err
	}
	return s.apply(ctx, state)
}

// apply validates and installs a new snapshot, then fans it out. Terminal
// states absorb: once reached, later snapshots are ignored.
func (s *Store) apply(ctx context.Context, state *models.SessionState) error {
	if err := state.Validate(); err != nil {
		log.ErrorC(s.token, fmt.Errorf("error validating session state: [%v]", err), log.Data{"type": state.Type})
		s.client.ReportError(ctx, s.token, "session", "invalid session state: "+err.Error())
		return fmt.Errorf("error validating session state: [%v]", err)
	}

	s.mu.Lock()
	if s.current != nil && s.current.Type.IsTerminal() {
		s.mu.Unlock()
		return nil
	}
	s.current = state
	update := Update{State: stateFor(state.Type), Session: state}
	subs := make([]chan Update, 0, len(s.subs))
	for _, ch := range s.subs {
		subs = append(subs, ch)
	}
	s.mu.Unlock()

	log.DebugC(s.token, "session state changed", log.Data{"type": state.Type, "state": update.State.String()})
	for _, ch := range subs {
		select {
		case ch <- update:
		default:
		}
	}
	return nil
}

// beginOperation claims the busy flag: a session with a gateway operation in
// flight rejects further ones outright.
func (s *Store) beginOperation() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrSessionBusy
	}
	s.busy = true
	return nil
}

// beginSubmission claims the busy flag for a payment submission, which a
// terminal session additionally refuses.
func (s *Store) beginSubmission() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil && s.current.Type.IsTerminal() {
		return ErrSessionTerminal
	}
	if s.busy {
		return ErrSessionBusy
	}
	s.busy = true
	return nil
}

func (s *Store) endOperation() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

// SubmitCard pays with the card form. The card must route through a method
// supporting native authentication; the engine is initialized lazily on the
// first card submission.
func (s *Store) SubmitCard(ctx context.Context, form *validation.CardForm) error {
	if err := s.beginSubmission(); err != nil {
		return err
	}
	defer s.endOperation()

	method := form.DerivedPaymentMethod()
	if method == nil {
		return builders.ErrInvalidPaymentParameters
	}

	networkName := strings.ToUpper(form.Issuer().String())
	if form.SelectedNetwork != nil {
		networkName = form.SelectedNetwork.Network
	}
	cardInfo := threeds.CardInfoForInitialization(method.CardCode, networkName)
	if cardInfo == "" {
		return builders.ErrInvalidCardInfo
	}

	if !s.auth.IsInitialized() {
		if err := s.auth.Initialize(ctx, s.token, cardInfo); err != nil {
			return err
		}
	}
	contextData, err := s.auth.GenerateContextData(ctx, s.token)
	if err != nil {
		return err
	}

	req, err := s.builder.SecuredCard(s.token, form, contextData)
	if err != nil {
		return err
	}

	state, err := s.client.SubmitSecuredPayment(ctx, s.token, req)
	if err != nil {
		return err
	}
	return s.apply(ctx, state)
}

// SubmitMethod pays with an alternative method and its form values.
func (s *Store) SubmitMethod(ctx context.Context, method *models.PaymentMethodData, saveCard bool, formValues map[string]string) error {
	if err := s.beginSubmission(); err != nil {
		return err
	}
	defer s.endOperation()

	submission, err := s.builder.Method(s.token, method, saveCard, formValues)
	if err != nil {
		return err
	}

	var state *models.SessionState
	if submission.Secured != nil {
		state, err = s.client.SubmitSecuredPayment(ctx, s.token, submission.Secured)
	} else {
		state, err = s.client.SubmitPayment(ctx, s.token, submission.Standard)
	}
	if err != nil {
		return err
	}
	return s.apply(ctx, state)
}

// SubmitApplePay pays with a native pay token. The merchant return URL comes
// from the session itself.
func (s *Store) SubmitApplePay(ctx context.Context, method *models.PaymentMethodData, payToken *models.ApplePayToken) error {
	if err := s.beginSubmission(); err != nil {
		return err
	}
	defer s.endOperation()

	s.mu.Lock()
	returnURL := ""
	if s.current != nil {
		returnURL = s.current.ReturnURL
	}
	s.mu.Unlock()

	req, err := s.builder.ApplePay(method, returnURL, payToken)
	if err != nil {
		return err
	}

	state, err := s.client.SubmitPayment(ctx, s.token, req)
	if err != nil {
		return err
	}
	return s.apply(ctx, state)
}

// SubmitWallet pays with a stored wallet entry. Native authentication is
// best effort here: a wallet card that cannot build its context still
// submits, and the gateway decides what to do without it.
func (s *Store) SubmitWallet(ctx context.Context, wallet *models.Wallet, cvv string) error {
	if err := s.beginSubmission(); err != nil {
		return err
	}
	defer s.endOperation()

	if wallet == nil {
		return builders.ErrWalletNotSelected
	}

	var contextData *models.SDKContextData
	if cardInfo := threeds.CardInfoForInitialization(wallet.CardCode, wallet.CardType); cardInfo != "" {
		if !s.auth.IsInitialized() {
			if err := s.auth.Initialize(ctx, s.token, cardInfo); err != nil {
				log.ErrorC(s.token, fmt.Errorf("error initializing authentication for wallet: [%v]", err))
			}
		}
		if s.auth.IsInitialized() {
			cd, err := s.auth.GenerateContextData(ctx, s.token)
			if err != nil {
				log.ErrorC(s.token, fmt.Errorf("error generating wallet authentication context: [%v]", err))
			} else {
				contextData = cd
			}
		}
	}

	req, err := s.builder.Wallet(s.token, wallet, cvv, contextData)
	if err != nil {
		return err
	}

	state, err := s.client.SubmitWalletPayment(ctx, s.token, req)
	if err != nil {
		return err
	}
	return s.apply(ctx, state)
}

// PollActiveWaiting polls the partner-completion endpoint at the configured
// fixed interval until the action completes, the context is cancelled, or
// the attempt bound is exhausted. On completion the session is refreshed.
func (s *Store) PollActiveWaiting(ctx context.Context) error {
	if err := s.beginOperation(); err != nil {
		return err
	}
	defer s.endOperation()

	s.mu.Lock()
	current := s.current
	s.mu.Unlock()

	if current == nil || current.Type != models.SessionTypeActiveWaiting || current.ActiveWaiting == nil {
		return ErrUnexpectedState
	}
	cardCode := current.ActiveWaiting.CardCode

	limiter := rate.NewLimiter(rate.Every(s.cfg.ActiveWaitingInterval), 1)
	for attempt := 0; attempt < s.cfg.ActiveWaitingMaxAttempts; attempt++ {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}

		done, err := s.client.IsActiveWaitingDone(ctx, s.token, cardCode)
		if err != nil {
			return err
		}
		if done {
			return s.refresh(ctx)
		}
	}

	log.InfoC(s.token, "active waiting exhausted its attempt bound", log.Data{"attempts": s.cfg.ActiveWaitingMaxAttempts})
	return ErrActiveWaitingTimeout
}

// ResolveChallenge runs the pending cardholder challenge and submits its
// outcome. The outcome is submitted whatever it is, including cancellation,
// so the gateway can settle the session.
func (s *Store) ResolveChallenge(ctx context.Context) error {
	if err := s.beginSubmission(); err != nil {
		return err
	}
	defer s.endOperation()

	s.mu.Lock()
	current := s.current
	s.mu.Unlock()

	if current == nil || current.Type != models.SessionTypeSdkChallenge || current.PaymentSdkChallenge == nil {
		return ErrUnexpectedState
	}

	challenge := current.PaymentSdkChallenge.SdkChallengeData
	response, err := s.auth.DoChallenge(ctx, s.token, &challenge)
	if err != nil {
		return err
	}

	state, err := s.client.SubmitAuthenticationResponse(ctx, s.token, response)
	if err != nil {
		return err
	}
	return s.apply(ctx, state)
}

// AvailableCardNetworks resolves the co-badged networks for the form's card
// prefix. Below the lookup threshold it returns nothing without a gateway
// round-trip.
func (s *Store) AvailableCardNetworks(ctx context.Context, form *validation.CardForm) ([]models.CardNetwork, error) {
	prefix := form.LookupPrefix()
	if prefix == "" {
		return nil, nil
	}

	s.mu.Lock()
	current := s.current
	s.mu.Unlock()
	if current == nil || current.PaymentMethodsList == nil {
		return nil, ErrUnexpectedState
	}

	var contracts []models.HandledContract
	for _, m := range current.PaymentMethodsList.PaymentMethodsData {
		if m.IsCard() {
			contracts = append(contracts, models.HandledContract{
				CardCode:       m.CardCode,
				ContractNumber: m.ContractNumber,
			})
		}
	}

	res, err := s.client.FetchAvailableCardNetworks(ctx, s.token, &models.AvailableCardNetworksRequest{
		CardNumber:       prefix,
		HandledContracts: contracts,
	})
	if err != nil {
		return nil, err
	}

	var networks []models.CardNetwork
	if d := res.DefaultCardNetwork(); d != nil {
		networks = append(networks, *d)
	}
	if a := res.AlternativeCardNetwork(); a != nil {
		networks = append(networks, *a)
	}
	return networks, nil
}
