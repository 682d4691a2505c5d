package diseases

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Info is a public, static description of a brain condition.
type Info struct {
	Name        string   `json:"name"`
	Summary     string   `json:"summary"`
	Symptoms    []string `json:"symptoms"`
	Precautions []string `json:"precautions"`
}

var catalog = []Info{
	{
		Name:        "Alzheimer's Disease",
		Summary:     "Alzheimer's is a progressive neurological disorder that causes memory loss and cognitive decline.",
		Symptoms:    []string{"Memory loss", "Confusion", "Difficulty recognizing people", "Mood swings"},
		Precautions: []string{"Stay mentally active", "Exercise regularly", "Eat a balanced diet", "Manage blood pressure"},
	},
	{
		Name:        "Parkinson's Disease",
		Summary:     "Parkinson's disease is a neurodegenerative disorder that affects movement and coordination.",
		Symptoms:    []string{"Tremors", "Muscle rigidity", "Slowed movement", "Balance problems", "Speech changes"},
		Precautions: []string{"Regular exercise", "Healthy diet", "Avoid toxins", "Regular neurological checkups"},
	},
	{
		Name:        "Epilepsy",
		Summary:     "Epilepsy is a central nervous system disorder in which brain activity becomes abnormal, causing seizures.",
		Symptoms:    []string{"Seizures", "Confusion", "Staring spells", "Jerking movements", "Loss of awareness"},
		Precautions: []string{"Avoid known triggers", "Take medications on time", "Wear medical alert ID", "Avoid driving alone"},
	},
	{
		Name:        "Brain Tumor",
		Summary:     "A brain tumor is an abnormal growth of tissue in the brain that can be benign or malignant.",
		Symptoms:    []string{"Headaches", "Seizures", "Nausea", "Vision problems", "Balance issues"},
		Precautions: []string{"Avoid radiation exposure", "Maintain a healthy lifestyle", "Seek early medical attention for symptoms"},
	},
	{
		Name:        "Stroke",
		Summary:     "A stroke occurs when the blood supply to part of the brain is interrupted or reduced, causing brain damage.",
		Symptoms:    []string{"Sudden weakness", "Confusion", "Trouble speaking", "Vision problems", "Loss of coordination"},
		Precautions: []string{"Control blood pressure and diabetes", "Avoid smoking and alcohol", "Eat a heart-healthy diet", "Exercise regularly"},
	},
}

// Catalog returns the published disease descriptions in display order.
func Catalog() []Info {
	return catalog
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/diseases", h.List)
}

func (h *Handler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, Catalog())
}
