// Command seed populates the blog_posts collection with the launch
// articles. It refuses to touch a non-empty collection unless --force.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/espace-agenda/core/internal/config"
	"github.com/espace-agenda/core/internal/database"
	"github.com/espace-agenda/core/internal/models"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to YAML config file")
	force := flag.Bool("force", false, "Replace existing posts")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer db.Close(context.Background())

	posts := db.BlogPosts()

	existing, err := posts.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.Fatal("count posts", zap.Error(err))
	}
	if existing > 0 {
		if !*force {
			logger.Fatal("collection already has posts, pass --force to replace them",
				zap.Int64("existing", existing))
		}
		res, err := posts.DeleteMany(ctx, bson.M{})
		if err != nil {
			logger.Fatal("delete posts", zap.Error(err))
		}
		logger.Info("removed existing posts", zap.Int64("deleted", res.DeletedCount))
	}

	docs := make([]interface{}, len(initialPosts))
	for i := range initialPosts {
		docs[i] = initialPosts[i]
	}
	if _, err := posts.InsertMany(ctx, docs); err != nil {
		logger.Fatal("insert posts", zap.Error(err))
	}

	for _, p := range initialPosts {
		logger.Info("inserted post", zap.String("id", p.ID), zap.String("title", p.Title))
	}
	logger.Info("database seeded", zap.Int("posts", len(initialPosts)))
}

func mustDate(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// initialPosts are the launch articles. Slugs come from the editorial
// source, not the slug generator: they were de-accented by hand.
var initialPosts = []models.BlogPost{
	{
		ID:      "1",
		Title:   "Comment choisir une solution de prise de rendez-vous adaptée à votre pratique",
		Slug:    "comment-choisir-une-solution-de-prise-de-rendez-vous-adaptee-a-votre-pratique",
		Excerpt: "Découvrez les critères essentiels pour sélectionner un système de réservation en ligne qui correspond réellement à vos besoins professionnels.",
		Content: `# Introduction

La gestion des rendez-vous est un défi quotidien pour de nombreux professionnels de l'accompagnement. Entre les appels téléphoniques incessants, les annulations de dernière minute et la coordination des emplois du temps, il est facile de perdre un temps précieux qui pourrait être consacré à votre activité principale.

## Les enjeux d'une bonne gestion

Une solution de prise de rendez-vous efficace doit répondre à plusieurs critères essentiels : simplicité d'utilisation, fiabilité, personnalisation et respect de la confidentialité. C'est pourquoi il est crucial de bien choisir l'outil qui vous accompagnera au quotidien.

## Les critères de sélection

Lors du choix d'une plateforme de réservation, plusieurs éléments doivent être pris en compte : la facilité de prise en main, les fonctionnalités proposées, la qualité du support client, et bien sûr, la possibilité de personnaliser l'outil à votre image professionnelle.

## Conclusion

Investir dans une solution de prise de rendez-vous adaptée, c'est investir dans votre sérénité et celle de vos clients. Une plateforme bien choisie vous permettra de gagner du temps, de réduire les absences et d'offrir une expérience moderne et professionnelle.`,
		Author:    models.DefaultAuthor,
		Date:      mustDate("2025-01-15T00:00:00Z"),
		Category:  "Conseils",
		Image:     "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?w=800&h=400&fit=crop",
		Published: true,
		CreatedAt: mustDate("2025-01-15T00:00:00Z"),
		UpdatedAt: mustDate("2025-01-15T00:00:00Z"),
	},
	{
		ID:      "2",
		Title:   "Les avantages de la prise de rendez-vous en ligne pour les praticiens",
		Slug:    "les-avantages-de-la-prise-de-rendez-vous-en-ligne-pour-les-praticiens",
		Excerpt: "Gain de temps, réduction des absences, automatisation : découvrez comment la réservation en ligne transforme votre quotidien professionnel.",
		Content: `# Introduction

La digitalisation des pratiques professionnelles n'est plus une option mais une nécessité. Pour les praticiens et professionnels de l'accompagnement, la prise de rendez-vous en ligne représente un tournant majeur dans l'organisation quotidienne.

## Un gain de temps considérable

Fini les allers-retours téléphoniques pour trouver un créneau disponible. Vos clients réservent en quelques clics, 24h/24, même en dehors de vos horaires d'ouverture. Vous gagnez ainsi plusieurs heures par semaine que vous pouvez consacrer à votre cœur de métier.

## Réduction significative des absences

Les rappels automatiques par email et SMS réduisent considérablement les oublis et les absences. Vos clients sont notifiés avant chaque rendez-vous, ce qui améliore votre taux de présence et optimise votre planning.

## Professionnalisme et modernité

Offrir une réservation en ligne, c'est montrer votre engagement dans une pratique moderne et centrée sur le client. C'est aussi valoriser votre image professionnelle et faciliter l'accès à vos services.

## Conclusion

La prise de rendez-vous en ligne n'est pas qu'un outil pratique : c'est un véritable levier de croissance pour votre activité professionnelle.`,
		Author:    models.DefaultAuthor,
		Date:      mustDate("2025-01-10T00:00:00Z"),
		Category:  "Avantages",
		Image:     "https://images.unsplash.com/photo-1551836022-d5d88e9218df?w=800&h=400&fit=crop",
		Published: true,
		CreatedAt: mustDate("2025-01-10T00:00:00Z"),
		UpdatedAt: mustDate("2025-01-10T00:00:00Z"),
	},
	{
		ID:      "3",
		Title:   "Personnaliser votre plateforme de réservation en marque blanche",
		Slug:    "personnaliser-votre-plateforme-de-reservation-en-marque-blanche",
		Excerpt: "Votre identité visuelle, vos couleurs, votre logo : créez une expérience 100% cohérente avec votre image professionnelle.",
		Content: `# Introduction

Dans un monde professionnel où l'image de marque est essentielle, disposer d'une solution en marque blanche n'est plus un luxe mais une nécessité. Espace Agenda vous permet de créer une expérience totalement personnalisée pour vos clients.

## Qu'est-ce qu'une solution en marque blanche ?

Une solution en marque blanche signifie que votre plateforme de réservation est entièrement à votre image : votre logo, vos couleurs, votre nom de domaine personnalisé. Aucune mention du fournisseur technique n'apparaît. Vos clients ne voient que votre marque.

## Les avantages de la personnalisation

Une plateforme personnalisée renforce la confiance de vos clients. Ils reconnaissent immédiatement votre identité visuelle et se sentent en terrain familier. Cela crée une expérience cohérente de bout en bout, de la découverte de vos services jusqu'à la prise de rendez-vous.

## Au-delà du visuel

La personnalisation ne s'arrête pas à l'apparence. Vous pouvez également adapter les questionnaires, les types de consultations, les durées de rendez-vous et bien d'autres paramètres pour coller parfaitement à votre pratique.

## Conclusion

Avec une solution en marque blanche, vous gardez le contrôle total de votre image professionnelle tout en bénéficiant d'une technologie performante et moderne.`,
		Author:    models.DefaultAuthor,
		Date:      mustDate("2025-01-05T00:00:00Z"),
		Category:  "Personnalisation",
		Image:     "https://images.unsplash.com/photo-1507238691740-187a5b1d37b8?w=800&h=400&fit=crop",
		Published: true,
		CreatedAt: mustDate("2025-01-05T00:00:00Z"),
		UpdatedAt: mustDate("2025-01-05T00:00:00Z"),
	},
}
