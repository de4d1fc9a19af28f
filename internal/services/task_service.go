package services

import (
	"github.com/rs/zerolog"

	"github.com/abdulwaheedrrr/go-assistant/internal/models"
	"github.com/abdulwaheedrrr/go-assistant/internal/storage"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	store  *storage.Store
	// lastID is a high-water mark so ids assigned within one run
	// keep increasing even after the highest task is removed.
	lastID int
}

func NewTaskService(
	logger zerolog.Logger,
	store *storage.Store,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		store:  store,
	}
}

func (s *taskServiceImpl) Add(params AddTaskParams) (*models.Task, error) {
	priority := params.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !models.ValidPriority(priority) {
		s.logger.Error().
			Str("priority", priority).
			Msg("invalid task priority")
		return nil, ErrInvalidTaskPriority
	}

	tasks := storage.Load[models.Task](s.store, storage.SlotTasks)

	task := models.Task{
		ID:          s.nextID(tasks),
		Description: params.Description,
		Status:      models.StatusPending,
		Priority:    priority,
		Due:         params.Due,
	}
	tasks = append(tasks, task)

	err := storage.Save(s.store, storage.SlotTasks, tasks)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to save tasks")
		return nil, err
	}
	s.lastID = task.ID
	s.logger.Debug().
		Int("task_id", task.ID).
		Msg("appended task")

	s.logger.Info().
		Int("task_id", task.ID).
		Msg("added task")
	return &task, nil
}

func (s *taskServiceImpl) List() []models.Task {
	tasks := storage.Load[models.Task](s.store, storage.SlotTasks)
	s.logger.Debug().
		Int("count", len(tasks)).
		Msg("loaded tasks")
	return tasks
}

func (s *taskServiceImpl) Complete(id int) (*models.Task, error) {
	tasks := storage.Load[models.Task](s.store, storage.SlotTasks)

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		tasks[i].Status = models.StatusDone

		err := storage.Save(s.store, storage.SlotTasks, tasks)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to save tasks")
			return nil, err
		}

		s.logger.Info().
			Int("task_id", id).
			Msg("completed task")
		return &tasks[i], nil
	}

	s.logger.Warn().
		Int("task_id", id).
		Msg("task not found")
	return nil, ErrTaskNotFound
}

func (s *taskServiceImpl) Remove(id int) (*models.Task, error) {
	tasks := storage.Load[models.Task](s.store, storage.SlotTasks)

	var removed *models.Task
	kept := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.ID == id {
			t := task
			removed = &t
			continue
		}
		kept = append(kept, task)
	}

	if removed == nil {
		s.logger.Warn().
			Int("task_id", id).
			Msg("task not found")
		return nil, ErrTaskNotFound
	}

	err := storage.Save(s.store, storage.SlotTasks, kept)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to save tasks")
		return nil, err
	}

	s.logger.Info().
		Int("task_id", id).
		Msg("removed task")
	return removed, nil
}

// nextID is 1 + the highest id ever observed: the maximum of the
// stored ids and the ids assigned earlier in this run.
func (s *taskServiceImpl) nextID(tasks []models.Task) int {
	maxID := s.lastID
	for _, task := range tasks {
		if task.ID > maxID {
			maxID = task.ID
		}
	}
	return maxID + 1
}
