package mailer

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	gomail "gopkg.in/gomail.v2"

	"eventpoint_backend/internals/configs"
)

const mailQueueKey = "eventpoint:mail:queue"

// MailJob: satu email yang menunggu dikirim worker
type MailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"` // HTML
}

var rdb *redis.Client

// InitRedis menyiapkan koneksi Redis untuk antrean email.
// REDIS_ADDR kosong → antrean nonaktif, Enqueue jadi no-op yang dicatat.
func InitRedis() {
	addr := configs.GetEnv("REDIS_ADDR", "")
	if addr == "" {
		log.Println("[INFO] REDIS_ADDR kosong, antrean email nonaktif")
		return
	}

	rdb = redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     configs.GetEnv("REDIS_PASSWORD", ""),
		DialTimeout:  2 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[ERROR] Redis tidak bisa dihubungi: %v", err)
		rdb = nil
		return
	}
	log.Println("[INFO] Antrean email Redis siap")
}

// Enqueue mendorong job ke antrean. Kegagalan antrean tidak boleh
// menggagalkan request pemanggil, cukup dicatat.
func Enqueue(ctx context.Context, job MailJob) {
	if rdb == nil {
		log.Printf("[INFO] Antrean email nonaktif, skip email ke %s", job.To)
		return
	}
	payload, err := sonic.Marshal(job)
	if err != nil {
		log.Printf("[ERROR] Gagal encode job email: %v", err)
		return
	}
	if err := rdb.LPush(ctx, mailQueueKey, payload).Err(); err != nil {
		log.Printf("[ERROR] Gagal enqueue email ke %s: %v", job.To, err)
	}
}

// StartMailWorker menjalankan goroutine konsumen antrean (BRPOP loop).
func StartMailWorker() {
	if rdb == nil {
		return
	}
	go func() {
		log.Println("[INFO] Mail worker jalan")
		ctx := context.Background()
		for {
			res, err := rdb.BRPop(ctx, 5*time.Second, mailQueueKey).Result()
			if err != nil {
				if err == redis.Nil {
					continue
				}
				log.Printf("[ERROR] BRPOP antrean email: %v", err)
				time.Sleep(2 * time.Second)
				continue
			}
			if len(res) != 2 {
				continue
			}

			var job MailJob
			if err := sonic.Unmarshal([]byte(res[1]), &job); err != nil {
				log.Printf("[ERROR] Job email korup, dibuang: %v", err)
				continue
			}
			if err := send(job); err != nil {
				log.Printf("[ERROR] Kirim email ke %s gagal: %v", job.To, err)
			}
		}
	}()
}

// send mengirim lewat SMTP (gomail)
func send(job MailJob) error {
	host := configs.GetEnv("SMTP_HOST", "")
	if host == "" {
		log.Println("[INFO] SMTP_HOST kosong, email tidak dikirim")
		return nil
	}
	port, err := strconv.Atoi(configs.GetEnv("SMTP_PORT", "587"))
	if err != nil {
		port = 587
	}
	user := configs.GetEnv("SMTP_USER", "")
	pass := configs.GetEnv("SMTP_PASSWORD", "")
	from := configs.GetEnv("SMTP_FROM", user)

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", job.To)
	m.SetHeader("Subject", job.Subject)
	m.SetBody("text/html", job.Body)

	return gomail.NewDialer(host, port, user, pass).DialAndSend(m)
}
