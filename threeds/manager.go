package threeds

import (
	"context"
	"fmt"
	"sync"

	"github.com/companieshouse/chs.go/log"

	"github.com/monext/checkout.sdk.go/config"
	"github.com/monext/checkout.sdk.go/gateway"
	"github.com/monext/checkout.sdk.go/models"
)

// statusUnavailable is the transaction status submitted whenever a challenge
// ends without a cardholder result: cancel, timeout or engine failure.
const statusUnavailable = "U"

// productionDirectoryServers pins card network names to EMVCo directory
// server ids. Production key material ships with the engine; only sandbox
// fetches keys from the gateway.
var productionDirectoryServers = map[string]string{
	"CB":         "A000000042",
	"VISA":       "A000000003",
	"MASTERCARD": "A000000004",
	"AMEX":       "A000000025",
}

// CardInfoForInitialization maps a selected payment method onto the card
// network name the engine initializes for. CB cards authenticate under the
// selected co-badged network; only Amex authenticates under its card code.
// An empty result means the method does not use native authentication.
func CardInfoForInitialization(cardCode, cardNetworkName string) string {
	switch cardCode {
	case models.CardCodeCB:
		return cardNetworkName
	case models.CardCodeAmex:
		return cardCode
	default:
		return ""
	}
}

// Manager owns the engine lifecycle for one checkout session: it initializes
// the engine at most once, keeps at most one open transaction, and folds
// challenge outcomes into the final authentication response.
type Manager struct {
	engine Engine
	client gateway.Client
	cfg    *config.Config

	mu                sync.Mutex
	initialized       bool
	directoryServerID string
	transaction       Transaction
}

// NewManager returns a manager bound to a native engine and the gateway.
func NewManager(engine Engine, client gateway.Client, cfg *config.Config) *Manager {
	return &Manager{
		engine: engine,
		client: client,
		cfg:    cfg,
	}
}

// IsInitialized reports whether the engine has been initialized for this
// session.
func (m *Manager) IsInitialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// resolveScheme resolves the scheme to initialize the engine with. Sandbox
// environments fetch directory server keys from the gateway and match by
// network name; production uses the pinned directory server table with the
// engine's built-in key material.
func (m *Manager) resolveScheme(ctx context.Context, token, cardNetworkName string) (*models.Scheme, error) {
	if m.cfg.IsSandbox() {
		remoteSchemes, err := m.client.FetchDirectoryServerSchemes(ctx, token)
		if err != nil {
			return nil, fmt.Errorf("error fetching directory server schemes: [%v]", err)
		}
		for _, remote := range remoteSchemes {
			if remote.Scheme == cardNetworkName {
				return &models.Scheme{
					Name:            remote.Scheme,
					DirectoryServer: remote.RID,
					PublicKey:       remote.PublicKey,
					RootCertificate: remote.RootPublicKey,
				}, nil
			}
		}
		return nil, &InvalidDataError{Message: "no scheme found for card code: " + cardNetworkName}
	}

	rid, ok := productionDirectoryServers[cardNetworkName]
	if !ok {
		return nil, &SchemeError{CardCode: cardNetworkName}
	}
	return &models.Scheme{Name: cardNetworkName, DirectoryServer: rid}, nil
}

// initResolver bridges the engine's initialize callbacks into a channel. The
// engine may invoke both callbacks or invoke one twice; only the first
// resolution counts.
type initResolver struct {
	once sync.Once
	done chan error
}

func newInitResolver() *initResolver {
	return &initResolver{done: make(chan error, 1)}
}

func (r *initResolver) resolve(err error) {
	r.once.Do(func() { r.done <- err })
}

// Initialize prepares the engine for the given card network. Repeat calls on
// an initialized manager are no-ops, so callers can initialize lazily on the
// first secured payment.
func (m *Manager) Initialize(ctx context.Context, token, cardNetworkName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	scheme, err := m.resolveScheme(ctx, token, cardNetworkName)
	if err != nil {
		m.client.ReportError(ctx, token, "threeds", "engine configuration failed: "+err.Error())
		return err
	}

	resolver := newInitResolver()
	m.engine.Initialize(EngineConfig{
		APIKey: m.cfg.ThreeDSAPIKey,
		Locale: m.cfg.Locale,
		Scheme: *scheme,
	}, func() {
		resolver.resolve(nil)
	}, func(initErr error) {
		resolver.resolve(initErr)
	})

	select {
	case err = <-resolver.done:
	case <-ctx.Done():
		err = ctx.Err()
	}

	m.logWarnings(token)

	if err != nil {
		m.client.ReportError(ctx, token, "threeds", "engine initialization failed: "+err.Error())
		return fmt.Errorf("error initializing 3DS engine: [%v]", err)
	}

	m.initialized = true
	m.directoryServerID = scheme.DirectoryServer
	return nil
}

// GenerateContextData opens a transaction and builds the authentication
// context attached to secured payment requests. Any previously open
// transaction is closed first.
func (m *Manager) GenerateContextData(ctx context.Context, token string) (*models.SDKContextData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return nil, ErrNotInitialized
	}
	if m.directoryServerID == "" {
		return nil, ErrNoDirectoryServer
	}

	m.closeTransactionLocked(ctx, token)

	transaction, err := m.engine.CreateTransaction(m.directoryServerID, MessageVersion)
	if err != nil {
		m.client.ReportError(ctx, token, "threeds", "transaction creation failed: "+err.Error())
		return nil, fmt.Errorf("error creating 3DS transaction: [%v]", err)
	}
	m.transaction = transaction

	params, err := transaction.AuthenticationRequestParameters()
	if err != nil {
		m.client.ReportError(ctx, token, "threeds", "authentication parameters unavailable: "+err.Error())
		return nil, fmt.Errorf("error reading authentication request parameters: [%v]", err)
	}

	ephemeralKey, err := TransformEphemeralPublicKey(params.SDKEphemeralPublicKey)
	if err != nil {
		m.client.ReportError(ctx, token, "threeds", "ephemeral key transformation failed: "+err.Error())
		return nil, err
	}

	return &models.SDKContextData{
		DeviceRenderingOptionsIF: deviceRenderingOptionsIF,
		DeviceRenderOptionsUI:    deviceRenderOptionsUI,
		MaxTimeout:               contextMaxTimeout,
		ReferenceNumber:          params.SDKReferenceNumber,
		EphemPubKey:              ephemeralKey,
		AppID:                    params.SDKAppID,
		TransID:                  params.SDKTransactionID,
		EncData:                  params.DeviceData,
	}, nil
}

type challengeOutcome struct {
	transStatus string
	sdkTransID  string
}

// challengeBridge adapts the engine's receiver callbacks into a channel.
// Whatever the engine does, at most one outcome is delivered.
type challengeBridge struct {
	once sync.Once
	done chan challengeOutcome
}

func newChallengeBridge() *challengeBridge {
	return &challengeBridge{done: make(chan challengeOutcome, 1)}
}

func (b *challengeBridge) resolve(outcome challengeOutcome) {
	b.once.Do(func() { b.done <- outcome })
}

func (b *challengeBridge) Completed(event CompletionEvent) {
	b.resolve(challengeOutcome{transStatus: event.TransactionStatus, sdkTransID: event.SDKTransactionID})
}

func (b *challengeBridge) Cancelled() {
	b.resolve(challengeOutcome{transStatus: statusUnavailable})
}

func (b *challengeBridge) TimedOut() {
	b.resolve(challengeOutcome{transStatus: statusUnavailable})
}

func (b *challengeBridge) ProtocolError(event ProtocolErrorEvent) {
	b.resolve(challengeOutcome{transStatus: statusUnavailable, sdkTransID: event.SDKTransactionID})
}

func (b *challengeBridge) RuntimeError(event RuntimeErrorEvent) {
	b.resolve(challengeOutcome{transStatus: statusUnavailable})
}

// DoChallenge runs the cardholder challenge and folds its outcome into the
// final authentication response. Every outcome, including cancellation and
// engine failure, yields a response; the gateway must always receive one so
// the session can settle. The transaction is closed and the engine cleaned
// up whatever happens.
func (m *Manager) DoChallenge(ctx context.Context, token string, challenge *models.SdkChallengeData) (*models.AuthenticationResponse, error) {
	m.mu.Lock()
	transaction := m.transaction
	m.mu.Unlock()

	if transaction == nil {
		return nil, ErrNotInitialized
	}

	defer func() {
		m.mu.Lock()
		m.closeTransactionLocked(ctx, token)
		m.mu.Unlock()
		m.cleanup(ctx, token)
	}()

	bridge := newChallengeBridge()
	outcome := challengeOutcome{transStatus: statusUnavailable}

	err := transaction.DoChallenge(ctx, challenge.ChallengeParameters(), bridge, challengeTimeout)
	if err != nil {
		log.ErrorC(token, fmt.Errorf("error running 3DS challenge: [%v]", err))
		m.client.ReportError(ctx, token, "threeds", "challenge failed: "+err.Error())
	} else {
		select {
		case outcome = <-bridge.done:
		case <-ctx.Done():
			outcome = challengeOutcome{transStatus: statusUnavailable}
		}
	}

	result := *challenge
	result.TransStatus = outcome.transStatus
	result.SdkTransID = outcome.sdkTransID
	response := result.AuthenticationResponse()
	return &response, nil
}

// Close closes any open transaction and cleans up the engine, e.g. when the
// session ends without a challenge.
func (m *Manager) Close(ctx context.Context, token string) {
	m.mu.Lock()
	m.closeTransactionLocked(ctx, token)
	m.mu.Unlock()
	m.cleanup(ctx, token)
}

func (m *Manager) closeTransactionLocked(ctx context.Context, token string) {
	if m.transaction == nil {
		return
	}
	if err := m.transaction.Close(); err != nil {
		m.client.ReportError(ctx, token, "threeds", "transaction close failed: "+err.Error())
	}
	m.transaction = nil
}

func (m *Manager) cleanup(ctx context.Context, token string) {
	if err := m.engine.Cleanup(); err != nil {
		m.client.ReportError(ctx, token, "threeds", "engine cleanup failed: "+err.Error())
	}
}

func (m *Manager) logWarnings(token string) {
	warnings, err := m.engine.Warnings()
	if err != nil {
		log.ErrorC(token, fmt.Errorf("error reading engine warnings: [%v]", err))
		return
	}
	for _, warning := range warnings {
		log.InfoC(token, "3DS engine warning", log.Data{"severity": warning.Severity, "message": warning.Message})
	}
}
