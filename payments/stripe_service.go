package payments

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	config "github.com/eduai/eduai_backend/configs"
)

const stripeBaseURL = "https://api.stripe.com/v1"

type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

// CreatePaymentIntent opens a charge intent with the processor for the given
// amount. Amount is converted to the smallest currency unit as Stripe
// requires.
func CreatePaymentIntent(amount float64, currency, courseID, userID string) (*PaymentIntent, error) {
	secretKey := config.Config("STRIPE_SECRET_KEY")
	if secretKey == "" {
		return nil, errors.New("STRIPE_SECRET_KEY is not set in .env")
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(int64(math.Round(amount*100)), 10))
	form.Set("currency", currency)
	form.Set("metadata[course_id]", courseID)
	form.Set("metadata[user_id]", userID)

	req, err := http.NewRequest("POST", stripeBaseURL+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create Stripe request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+secretKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send Stripe request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Stripe response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("Stripe API error: %s", string(respBody))
		return nil, fmt.Errorf("Stripe API returned non-200 status: %d", resp.StatusCode)
	}

	var intent PaymentIntent
	if err := json.Unmarshal(respBody, &intent); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Stripe response: %v", err)
	}

	return &intent, nil
}
