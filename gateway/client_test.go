package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/jarcoal/httpmock"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/monext/checkout.sdk.go/config"
	"github.com/monext/checkout.sdk.go/models"
)

const testToken = "1ok7AK2ML6JgYJVMI1521746021774476"

func createTestClient() *HTTPClient {
	return NewHTTPClient(config.DefaultConfig())
}

func TestUnitFetchCurrentState(t *testing.T) {
	ctx := context.Background()

	Convey("Error sending request to gateway", t, func() {
		client := createTestClient()
		httpmock.ActivateNonDefault(client.httpClient)
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("GET",
			"https://homologation-payment.payline.com/services/token/"+testToken+"/state/current",
			httpmock.NewErrorResponder(errors.New("error")))

		state, err := client.FetchCurrentState(ctx, testToken)
		So(state, ShouldBeNil)
		var netErr *NetworkError
		So(errors.As(err, &netErr), ShouldBeTrue)
	})

	Convey("Error status back from gateway", t, func() {
		client := createTestClient()
		httpmock.ActivateNonDefault(client.httpClient)
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("GET",
			"https://homologation-payment.payline.com/services/token/"+testToken+"/state/current",
			httpmock.NewStringResponder(http.StatusNotFound, "not found"))

		state, err := client.FetchCurrentState(ctx, testToken)
		So(state, ShouldBeNil)
		var statusErr *StatusError
		So(errors.As(err, &statusErr), ShouldBeTrue)
		So(statusErr.StatusCode, ShouldEqual, http.StatusNotFound)
	})

	Convey("Malformed response body", t, func() {
		client := createTestClient()
		httpmock.ActivateNonDefault(client.httpClient)
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("GET",
			"https://homologation-payment.payline.com/services/token/"+testToken+"/state/current",
			httpmock.NewStringResponder(http.StatusOK, "{not json"))
		httpmock.RegisterResponder("POST",
			"https://homologation-payment.payline.com/log",
			httpmock.NewStringResponder(http.StatusOK, ""))

		state, err := client.FetchCurrentState(ctx, testToken)
		So(state, ShouldBeNil)
		var decErr *DecodingError
		So(errors.As(err, &decErr), ShouldBeTrue)
	})

	Convey("Successful state fetch", t, func() {
		client := createTestClient()
		httpmock.ActivateNonDefault(client.httpClient)
		defer httpmock.DeactivateAndReset()
		response := models.SessionState{
			Token:              testToken,
			Type:               models.SessionTypePaymentMethods,
			PaymentMethodsList: &models.PaymentMethodsList{},
		}
		responder, _ := httpmock.NewJsonResponder(http.StatusOK, response)
		httpmock.RegisterResponder("GET",
			"https://homologation-payment.payline.com/services/token/"+testToken+"/state/current",
			responder)

		state, err := client.FetchCurrentState(ctx, testToken)
		So(err, ShouldBeNil)
		So(state.Token, ShouldEqual, testToken)
		So(state.Type, ShouldEqual, models.SessionTypePaymentMethods)
	})

	Convey("Request carries gateway headers", t, func() {
		client := createTestClient()
		httpmock.ActivateNonDefault(client.httpClient)
		defer httpmock.DeactivateAndReset()
		var captured http.Header
		httpmock.RegisterResponder("GET",
			"https://homologation-payment.payline.com/services/token/"+testToken+"/state/current",
			func(req *http.Request) (*http.Response, error) {
				captured = req.Header
				return httpmock.NewJsonResponse(http.StatusOK, models.SessionState{
					Token: testToken, Type: models.SessionTypeCancelled,
				})
			})

		_, err := client.FetchCurrentState(ctx, testToken)
		So(err, ShouldBeNil)
		So(captured.Get("Accept"), ShouldEqual, "application/json")
		So(captured.Get("Accept-Language"), ShouldEqual, "en")
		So(captured.Get("Origin"), ShouldEqual, "homologation-payment.payline.com")
		So(captured.Get("X-Widget-SDK"), ShouldEqual, "GO "+SDKVersion)
		So(captured.Get("X-Request-ID"), ShouldNotBeEmpty)
	})
}

func TestUnitIsActiveWaitingDone(t *testing.T) {
	ctx := context.Background()

	Convey("Poll returns not done then done", t, func() {
		client := createTestClient()
		httpmock.ActivateNonDefault(client.httpClient)
		defer httpmock.DeactivateAndReset()
		responses := []string{"false", "true"}
		call := 0
		httpmock.RegisterResponder("GET",
			`=~^https://homologation-payment\.payline\.com/services/token/`+testToken+`/cardCode/CB/activewaiting/isDone`,
			func(req *http.Request) (*http.Response, error) {
				body := responses[call]
				call++
				So(req.URL.Query().Get("timestamp"), ShouldNotBeEmpty)
				return httpmock.NewStringResponse(http.StatusOK, body), nil
			})

		done, err := client.IsActiveWaitingDone(ctx, testToken, "CB")
		So(err, ShouldBeNil)
		So(done, ShouldBeFalse)

		done, err = client.IsActiveWaitingDone(ctx, testToken, "CB")
		So(err, ShouldBeNil)
		So(done, ShouldBeTrue)
	})
}

func TestUnitSubmitPayment(t *testing.T) {
	ctx := context.Background()

	Convey("Standard payment posts to the payment endpoint", t, func() {
		client := createTestClient()
		httpmock.ActivateNonDefault(client.httpClient)
		defer httpmock.DeactivateAndReset()
		var body []byte
		httpmock.RegisterResponder("POST",
			"https://homologation-payment.payline.com/services/token/"+testToken+"/paymentRequest",
			func(req *http.Request) (*http.Response, error) {
				buf := make([]byte, req.ContentLength)
				req.Body.Read(buf)
				body = buf
				return httpmock.NewJsonResponse(http.StatusOK, models.SessionState{
					Token: testToken,
					Type:  models.SessionTypeActiveWaiting,
					ActiveWaiting: &models.ActiveWaiting{
						NeedActiveWaitingAction: true,
						CardCode:                models.CardCodeCB,
					},
				})
			})

		req := &models.PaymentRequest{
			CardCode:          models.CardCodeCB,
			ContractNumber:    "1234",
			MerchantReturnURL: client.ReturnURL(testToken),
			PaymentParams:     models.PaymentParams{Network: "CB"},
		}
		state, err := client.SubmitPayment(ctx, testToken, req)
		So(err, ShouldBeNil)
		So(state.Type, ShouldEqual, models.SessionTypeActiveWaiting)
		So(string(body), ShouldContainSubstring, `"NETWORK":"CB"`)
		So(string(body), ShouldContainSubstring, `"merchantReturnUrl"`)
	})

	Convey("Authentication response posts to the sdk payment endpoint", t, func() {
		client := createTestClient()
		httpmock.ActivateNonDefault(client.httpClient)
		defer httpmock.DeactivateAndReset()
		responder, _ := httpmock.NewJsonResponder(http.StatusOK, models.SessionState{
			Token:          testToken,
			Type:           models.SessionTypeSuccess,
			PaymentSuccess: &models.PaymentSuccess{SelectedCardCode: models.CardCodeCB},
		})
		httpmock.RegisterResponder("POST",
			"https://homologation-payment.payline.com/services/token/"+testToken+"/SdkPaymentRequest",
			responder)

		res := &models.AuthenticationResponse{
			AcsReferenceNumber:   "3DS_ACS_1",
			ThreeDSVersion:       "2.2.0",
			ThreeDSServerTransID: "server-trans-id",
			TransStatus:          "Y",
		}
		state, err := client.SubmitAuthenticationResponse(ctx, testToken, res)
		So(err, ShouldBeNil)
		So(state.Type, ShouldEqual, models.SessionTypeSuccess)
	})
}

func TestUnitFetchDirectoryServerSchemes(t *testing.T) {
	ctx := context.Background()

	Convey("Scheme list is unwrapped from its envelope", t, func() {
		client := createTestClient()
		httpmock.ActivateNonDefault(client.httpClient)
		defer httpmock.DeactivateAndReset()
		responder, _ := httpmock.NewJsonResponder(http.StatusOK, models.DirectoryServerSdkKeyListResponse{
			DirectoryServerSdkKeyList: []models.RemoteScheme{
				{Scheme: "visa", RID: "A000000003", PublicKey: "key", RootPublicKey: "root"},
			},
		})
		httpmock.RegisterResponder("GET",
			"https://homologation-payment.payline.com/services/token/"+testToken+"/directoryServerSdkKeys",
			responder)

		schemes, err := client.FetchDirectoryServerSchemes(ctx, testToken)
		So(err, ShouldBeNil)
		So(schemes, ShouldHaveLength, 1)
		So(schemes[0].RID, ShouldEqual, "A000000003")
	})
}

func TestUnitReturnURL(t *testing.T) {
	Convey("Return URL points at the gateway's v2 page", t, func() {
		client := createTestClient()
		So(client.ReturnURL(testToken), ShouldEqual,
			"https://homologation-payment.payline.com/v2?token="+testToken)
	})

	Convey("Custom environments keep their extra path", t, func() {
		cfg := config.DefaultConfig()
		cfg.Environment = "gateway.example.com/payline-widget"
		client := NewHTTPClient(cfg)
		So(client.ReturnURL("abc"), ShouldEqual, "https://gateway.example.com/payline-widget/v2?token=abc")
		So(client.serviceURL("/token/abc/state/current"), ShouldEqual,
			"https://gateway.example.com/payline-widget/services/token/abc/state/current")
	})
}

func TestUnitReportError(t *testing.T) {
	ctx := context.Background()

	Convey("Remote log posts a form-encoded JSON array", t, func() {
		client := createTestClient()
		httpmock.ActivateNonDefault(client.httpClient)
		defer httpmock.DeactivateAndReset()
		var form url.Values
		httpmock.RegisterResponder("POST",
			"https://homologation-payment.payline.com/log",
			func(req *http.Request) (*http.Response, error) {
				So(req.Header.Get("Content-Type"), ShouldEqual, "application/x-www-form-urlencoded")
				req.ParseForm()
				form = req.PostForm
				return httpmock.NewStringResponse(http.StatusOK, ""), nil
			})

		client.ReportError(ctx, testToken, "gateway", "something broke")
		So(form.Get("layout"), ShouldEqual, "JsonLayout")
		So(strings.HasPrefix(form.Get("data"), "["), ShouldBeTrue)
		So(form.Get("data"), ShouldContainSubstring, `"level":"ERROR"`)
		So(form.Get("data"), ShouldContainSubstring, `"gateway - something broke"`)
		So(form.Get("data"), ShouldContainSubstring, testToken)
	})

	Convey("Remote log failures are swallowed", t, func() {
		client := createTestClient()
		httpmock.ActivateNonDefault(client.httpClient)
		defer httpmock.DeactivateAndReset()
		httpmock.RegisterResponder("POST",
			"https://homologation-payment.payline.com/log",
			httpmock.NewErrorResponder(errors.New("error")))

		So(func() { client.ReportError(ctx, testToken, "gateway", "oops") }, ShouldNotPanic)
	})
}
