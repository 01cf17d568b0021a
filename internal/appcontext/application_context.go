package appcontext

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/ordercenter/internal/config"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/producer"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/repository/redis_decorator"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/repository/redis_repo"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/token"
	"github.com/RoyceAzure/lab/ordercenter/internal/service"
	"github.com/redis/go-redis/v9"
)

type ApplicationContext struct {
	Cf             *config.Config
	Store          db.UnifiedDB
	RedisClient    *redis.Client
	TokenMaker     token.Maker
	OrderProducer  producer.IOrderEventProducer
	UserService    service.IUserService
	AuthService    service.IAuthService
	CartService    service.ICartService
	OrderService   service.IOrderService
	ProductService service.IProductService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	err := app.Init()
	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	err := app.setUpStore()
	if err != nil {
		return err
	}

	err = app.setUpRedis()
	if err != nil {
		return err
	}

	err = app.setUpTokenMaker()
	if err != nil {
		return err
	}

	app.setUpOrderProducer()
	app.setUpServices()

	return nil
}

func (app *ApplicationContext) setUpStore() error {
	log.Printf("Start setup database connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return err
	}

	store := db.NewUnifiedDB(conn)
	if err := store.InitMigrate(); err != nil {
		return err
	}
	app.Store = store
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpRedis() error {
	log.Printf("Start setup redis client")
	app.RedisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", app.Cf.RedisHost, app.Cf.RedisPort),
		Password: app.Cf.RedisPas,
	})
	log.Printf("Finish setup redis client")
	return nil
}

func (app *ApplicationContext) setUpTokenMaker() error {
	log.Printf("Start setup token maker")
	tokenMaker, err := token.NewPasetoMaker(app.Cf.AuthTokenKey)
	if err != nil {
		return err
	}
	app.TokenMaker = tokenMaker
	log.Printf("Finish setup token maker")
	return nil
}

// kafka沒設定就不建producer, 轉單事件為best effort
func (app *ApplicationContext) setUpOrderProducer() {
	if app.Cf.KafkaBrokers == "" || app.Cf.KafkaOrderTopic == "" {
		log.Printf("kafka not configured, order events disabled")
		return
	}

	log.Printf("Start setup order event producer")
	brokers := strings.Split(app.Cf.KafkaBrokers, ",")
	app.OrderProducer = producer.NewOrderEventProducer(brokers, app.Cf.KafkaOrderTopic)
	log.Printf("Finish setup order event producer")
}

func (app *ApplicationContext) setUpServices() {
	log.Printf("Start setup services")

	// catalog讀取走cache aside, redis未命中回源db
	productRedisRepo := redis_repo.NewProductRedisRepo(app.RedisClient, 10*time.Minute)
	cachedProductRepo := redis_decorator.NewCacheAsideProductRepo(app.Store, productRedisRepo)

	app.UserService = service.NewUserService(app.Store)
	app.AuthService = service.NewAuthService(app.UserService, app.TokenMaker)
	app.CartService = service.NewCartService(app.Store, cachedProductRepo)
	app.OrderService = service.NewOrderService(app.Store, app.Store, cachedProductRepo, app.OrderProducer)
	app.ProductService = service.NewProductService(cachedProductRepo)

	log.Printf("Finish setup services")
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		if app.OrderProducer != nil {
			log.Printf("Closing order event producer...")
			if err := app.OrderProducer.Close(); err != nil {
				//有錯誤不結束流程
				log.Printf("order event producer shutdown error: %v", err)
			}
		}

		if app.RedisClient != nil {
			log.Printf("Closing redis client...")
			if err := app.RedisClient.Close(); err != nil {
				log.Printf("redis client shutdown error: %v", err)
			}
		}

		if app.Store != nil {
			log.Printf("Closing database connection...")
			if sqlDB, err := app.Store.GetDB().DB(); err == nil {
				sqlDB.Close()
			}
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
