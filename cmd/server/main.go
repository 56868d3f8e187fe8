package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/playground"

	"github.com/antonk9218/blogapi/graph"
	"github.com/antonk9218/blogapi/graph/generated"
	"github.com/antonk9218/blogapi/internal/apperr"
	"github.com/antonk9218/blogapi/internal/auth"
	"github.com/antonk9218/blogapi/internal/config"
	"github.com/antonk9218/blogapi/internal/post"
	"github.com/antonk9218/blogapi/internal/storage/memory"
	"github.com/antonk9218/blogapi/internal/storage/postgres"
	"github.com/antonk9218/blogapi/internal/user"
	"github.com/antonk9218/blogapi/models"
)

func main() {
	storageType := flag.String("storage", "memory", "Тип хранилища: memory или postgres")
	flag.Parse()

	// загружаем .env из нашего config.go
	config.LoadEnv()

	var postStore post.PostStorage
	var userStore user.UserStorage

	switch *storageType {
	case "postgres":
		err := postgres.InitDB()
		if err != nil {
			log.Fatalf("failed to init database: %v", err)
		}
		err = postgres.DB.AutoMigrate(&models.User{}, &models.Post{}).Error
		if err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}

		log.Println("Используется PostgreSQL хранилище")
		postStore = postgres.NewPostPostgresStorage()
		userStore = postgres.NewUserPostgresStorage()

	case "memory":
		log.Println("Используется in-memory хранилище")
		memUserStore := memory.NewUserMemoryStorage()
		userStore = memUserStore
		postStore = memory.NewPostMemoryStorage(memUserStore)

	default:
		log.Fatalf("неизвестный тип хранилища: %s", *storageType)
	}

	// Инициализация резолвера
	resolver := &graph.Resolver{
		PostStore: postStore,
		UserStore: userStore,
	}

	// Создаем новый сервер GraphQL с резолверами
	srv := handler.NewDefaultServer(generated.NewExecutableSchema(generated.Config{
		Resolvers: resolver,
	}))
	// Классифицированные ошибки (401/404/409/422) уходят клиенту через extensions
	srv.SetErrorPresenter(apperr.Presenter)

	// auth.Middleware - http.Handler, который получает запрос, вытаскивает JWT токен из заголовка,
	// проверяет и валидирует его, сохраняет userID в context
	http.Handle("/query", auth.Middleware(srv))
	// Страница с тестовым интерфейсом Playground
	http.Handle("/", playground.Handler("GraphQL Playground", "/query"))

	// HTTP сервер
	server := &http.Server{
		Addr: ":8080",
	}

	// запуск HTTP сервера
	go func() {
		log.Println("Сервер запущен на http://localhost:8080/")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Ошибка сервера: %v", err)
		}
	}()

	// Ожидание SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Завершение...")

	if *storageType == "postgres" {
		if err := postgres.CloseDB(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}

	if err := server.Shutdown(context.Background()); err != nil {
		log.Fatalf("Ошибка при завершении сервера: %v", err)
	}

	log.Println("Сервер остановлен корректно")
}
