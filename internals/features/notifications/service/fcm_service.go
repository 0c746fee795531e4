package service

import (
	"context"
	"log"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"eventpoint_backend/internals/configs"
)

// FcmService membungkus Firebase Cloud Messaging.
// Client boleh nil (kredensial tidak di-set) → semua kirim jadi no-op yang
// dicatat di log, supaya mutasi data tidak pernah bergantung ke FCM.
type FcmService struct {
	client *messaging.Client
}

// InitFCM: baca path service-account dari env. Gagal init tidak fatal.
func InitFCM() *FcmService {
	credPath := configs.GetEnv("FIREBASE_CREDENTIALS", "")
	if credPath == "" {
		log.Println("[INFO] FIREBASE_CREDENTIALS kosong, push notification nonaktif")
		return &FcmService{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credPath))
	if err != nil {
		log.Printf("[ERROR] Gagal init Firebase app: %v", err)
		return &FcmService{}
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		log.Printf("[ERROR] Gagal init FCM client: %v", err)
		return &FcmService{}
	}

	log.Println("[INFO] FCM client siap")
	return &FcmService{client: client}
}

// Enabled: true kalau client FCM benar-benar terpasang
func (s *FcmService) Enabled() bool {
	return s != nil && s.client != nil
}

// SendPush mengirim satu notifikasi. Error dikembalikan untuk dicatat
// pemanggil, bukan untuk menggagalkan operasi data.
func (s *FcmService) SendPush(token, title, body string, data map[string]string) error {
	if !s.Enabled() {
		log.Printf("[INFO] FCM nonaktif, skip push: %s", title)
		return nil
	}
	if token == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := s.client.Send(ctx, &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	})
	return err
}

// BulkPushResult: hasil kirim massal, token yang unregistered dikumpulkan
// supaya pemanggil bisa membersihkannya dari tabel users.
type BulkPushResult struct {
	SuccessCount  int
	FailedTokens  []string
	InvalidTokens []string
}

// SendBulkPush mengirim ke banyak token sekaligus. Kegagalan per-token
// terisolasi, tidak menghentikan token lain.
func (s *FcmService) SendBulkPush(tokens []string, title, body string, data map[string]string) BulkPushResult {
	res := BulkPushResult{}
	if !s.Enabled() || len(tokens) == 0 {
		if len(tokens) > 0 {
			log.Printf("[INFO] FCM nonaktif, skip bulk push ke %d token: %s", len(tokens), title)
		}
		return res
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	messages := make([]*messaging.Message, 0, len(tokens))
	for _, t := range tokens {
		if t == "" {
			continue
		}
		messages = append(messages, &messaging.Message{
			Token: t,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		})
	}
	if len(messages) == 0 {
		return res
	}

	br, err := s.client.SendEach(ctx, messages)
	if err != nil {
		log.Printf("[ERROR] Bulk push gagal total: %v", err)
		res.FailedTokens = tokens
		return res
	}

	res.SuccessCount = br.SuccessCount
	for i, r := range br.Responses {
		if r.Success {
			continue
		}
		token := messages[i].Token
		res.FailedTokens = append(res.FailedTokens, token)
		if messaging.IsUnregistered(r.Error) {
			res.InvalidTokens = append(res.InvalidTokens, token)
		}
	}
	return res
}
