package notify

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/staybluo/pkg/config"
	"github.com/staybluo/pkg/database"
	"github.com/staybluo/pkg/entities"
	"go.mau.fi/whatsmeow"
	waProto "go.mau.fi/whatsmeow/binary/proto"
	"go.mau.fi/whatsmeow/store/sqlstore"
	waTypes "go.mau.fi/whatsmeow/types"
	waLog "go.mau.fi/whatsmeow/util/log"
	"google.golang.org/protobuf/proto"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

var nonPhoneChars = regexp.MustCompile(`[^\d+]`)

// WhatsAppChannel is the site operator's WhatsApp session, usable as the
// phone-leg transport instead of Twilio. One session for the whole process;
// it must be paired once by scanning a QR code through the admin endpoints.
type WhatsAppChannel struct {
	cfg config.WhatsApp

	mu        sync.RWMutex
	client    *whatsmeow.Client
	container *sqlstore.Container
	connected bool
}

func NewWhatsAppChannel(cfg config.WhatsApp) *WhatsAppChannel {
	return &WhatsAppChannel{cfg: cfg}
}

func (w *WhatsAppChannel) Channel() string {
	return ChannelWhatsApp
}

func (w *WhatsAppChannel) SendText(ctx context.Context, to, body string) error {
	w.mu.RLock()
	client, connected := w.client, w.connected
	w.mu.RUnlock()

	if client == nil || client.Store.ID == nil {
		return fmt.Errorf("%w: operator WhatsApp channel is not paired", ErrNotConfigured)
	}
	if !connected || !client.IsConnected() {
		return fmt.Errorf("%w: operator WhatsApp channel is not connected", ErrNotConfigured)
	}

	recipient, err := formatJID(to)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}

	msg := &waProto.Message{
		Conversation: proto.String(body),
	}

	resp, err := client.SendMessage(ctx, recipient, msg)
	if err != nil {
		return fmt.Errorf("failed to send whatsapp message to %s: %w", to, err)
	}

	log.Printf("WhatsApp message sent. ID: %s, Timestamp: %s", resp.ID, resp.Timestamp.Format(time.RFC3339))
	return nil
}

// Pair initializes the session store if needed and drives the QR login flow.
// It returns the QR code string for the operator to scan, or a confirmation
// when the session is already live.
func (w *WhatsAppChannel) Pair(ctx context.Context) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.client == nil {
		if err := w.initClient(ctx); err != nil {
			return "", err
		}
	}

	if w.client.Store.ID != nil {
		if !w.client.IsConnected() {
			if err := w.client.Connect(); err != nil {
				return "", fmt.Errorf("failed to reconnect: %v", err)
			}
		}
		w.connected = true
		w.updateStatus(true, true)
		return "Operator channel already paired", nil
	}

	// QR channel must be obtained before connecting
	qrChan, err := w.client.GetQRChannel(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get QR channel: %v", err)
	}

	if err := w.client.Connect(); err != nil {
		return "", fmt.Errorf("failed to connect: %v", err)
	}

	log.Println("Generating QR code for operator channel")

	for evt := range qrChan {
		switch evt.Event {
		case "code":
			w.updateStatus(true, false)
			return evt.Code, nil
		case "success":
			w.connected = true
			w.updateStatus(true, true)
			return "Operator channel paired successfully", nil
		case "timeout":
			return "", fmt.Errorf("QR code expired")
		case "error":
			return "", fmt.Errorf("QR code error: %v", evt.Error)
		default:
			log.Printf("Unknown QR event for operator channel: %s", evt.Event)
		}
	}

	return "", fmt.Errorf("QR channel closed unexpectedly")
}

func (w *WhatsAppChannel) Status(ctx context.Context) (string, error) {
	w.mu.RLock()
	client, connected := w.client, w.connected
	w.mu.RUnlock()

	if client != nil {
		if client.Store.ID != nil {
			if connected && client.IsConnected() {
				w.updateStatus(true, true)
				return "Connected and logged in", nil
			}
			w.updateStatus(false, true)
			return "Logged in but disconnected", nil
		}
		if client.IsConnected() {
			w.updateStatus(true, false)
			return "Connected but not paired", nil
		}
		w.updateStatus(false, false)
		return "Session exists but disconnected", nil
	}

	// No in-memory session; report what the store remembers.
	var status entities.ChannelStatus
	err := database.DBClient().WithContext(ctx).Where("channel = ?", ChannelWhatsApp).First(&status).Error
	if err == gorm.ErrRecordNotFound {
		return "Not initialized", nil
	} else if err != nil {
		return "", fmt.Errorf("failed to get channel status: %v", err)
	}

	if status.IsLoggedIn {
		return "Paired in a previous run (restart pairing to reconnect)", nil
	}
	return "Not initialized", nil
}

func (w *WhatsAppChannel) Disconnect(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.client != nil {
		w.client.Disconnect()
	}
	if w.container != nil {
		w.container.Close()
	}
	w.client = nil
	w.container = nil
	w.connected = false
	w.updateStatus(false, false)

	log.Println("Operator WhatsApp channel shut down")
	return nil
}

func (w *WhatsAppChannel) initClient(ctx context.Context) error {
	clientLog := waLog.Stdout("WhatsApp_Operator", "INFO", true)

	container, err := sqlstore.New(ctx, "sqlite", w.cfg.StoreDSN, clientLog)
	if err != nil {
		return fmt.Errorf("failed to open session store: %v", err)
	}

	deviceStore, err := container.GetFirstDevice(ctx)
	if err != nil {
		container.Close()
		return fmt.Errorf("failed to get device: %v", err)
	}

	w.container = container
	w.client = whatsmeow.NewClient(deviceStore, clientLog)
	w.updateStatus(false, w.client.Store.ID != nil)
	return nil
}

// updateStatus mirrors the channel state into postgres so it survives
// restarts. Caller may or may not hold the mutex; only gorm state is touched.
func (w *WhatsAppChannel) updateStatus(isConnected, isLoggedIn bool) {
	db := database.DBClient()

	var status entities.ChannelStatus
	err := db.Where("channel = ?", ChannelWhatsApp).First(&status).Error
	if err == gorm.ErrRecordNotFound {
		status = entities.ChannelStatus{
			Channel:      ChannelWhatsApp,
			IsConnected:  isConnected,
			IsLoggedIn:   isLoggedIn,
			LastActiveAt: time.Now(),
		}
		db.Create(&status)
	} else if err == nil {
		status.IsConnected = isConnected
		status.IsLoggedIn = isLoggedIn
		status.LastActiveAt = time.Now()
		db.Save(&status)
	}
}

// formatJID converts an E.164-ish phone number to a WhatsApp JID.
func formatJID(phoneNumber string) (waTypes.JID, error) {
	cleanPhone := nonPhoneChars.ReplaceAllString(phoneNumber, "")
	cleanPhone = strings.TrimPrefix(cleanPhone, "+")

	if len(cleanPhone) < 10 {
		return waTypes.JID{}, fmt.Errorf("invalid phone number: too short")
	}

	return waTypes.NewJID(cleanPhone, waTypes.DefaultUserServer), nil
}
