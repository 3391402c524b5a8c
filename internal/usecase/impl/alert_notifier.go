package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	deliverycontext "vigia/internal/delivery/context"
	"vigia/internal/domain/repository"
	"vigia/internal/domain/service"
	"vigia/internal/observability/metrics"
	"vigia/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultBraceletName = "Mi Pulsera"

// alertNotifier implements the AlertUsecase interface. It resolves the
// caregiver bound to a bracelet and fans the alert out over WhatsApp and
// push. Channels are independent: a failure on one never blocks the other.
type alertNotifier struct {
	bindingRepo repository.BindingRepository
	userRepo    repository.UserRepository
	deviceRepo  repository.CaregiverDeviceRepository
	messenger   service.MessengerService
	push        service.PushService
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// AlertNotifierParams holds dependencies for alertNotifier, injected by Fx.
// Messenger and Push are optional: either channel may be absent when its
// gateway is not configured.
type AlertNotifierParams struct {
	fx.In

	BindingRepo repository.BindingRepository
	UserRepo    repository.UserRepository
	DeviceRepo  repository.CaregiverDeviceRepository
	Messenger   service.MessengerService `optional:"true"`
	Push        service.PushService      `optional:"true"`
	Metrics     *metrics.Metrics
	Logger      *slog.Logger
}

// NewAlertNotifier is the constructor for alertNotifier.
func NewAlertNotifier(params AlertNotifierParams) usecase.AlertUsecase {
	return &alertNotifier{
		bindingRepo: params.BindingRepo,
		userRepo:    params.UserRepo,
		deviceRepo:  params.DeviceRepo,
		messenger:   params.Messenger,
		push:        params.Push,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *alertNotifier) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// NotifyFallDetected delivers a fall alert to the caregiver watching the
// bracelet. An unbound bracelet, or a bound caregiver that no longer exists,
// ends the pipeline silently: the event itself is already stored.
func (srv *alertNotifier) NotifyFallDetected(ctx context.Context, alert *usecase.FallAlert) error {
	binding, err := srv.bindingRepo.FindBindingByToken(ctx, alert.Token)
	if err != nil {
		if errors.Is(err, repository.ErrBindingNotFound) {
			srv.log(ctx).Info("Fall detected on unbound bracelet", slog.String("token", alert.Token))

			return nil
		}

		return errors.Wrap(err, "failed to look up binding")
	}

	user, err := srv.userRepo.FindUserByID(ctx, binding.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Binding references missing caregiver",
				slog.String("token", alert.Token),
				slog.String("userID", binding.UserID.String()),
			)

			return nil
		}

		return errors.Wrap(err, "failed to look up caregiver")
	}

	nombrePulsera := binding.NombrePulsera
	if nombrePulsera == "" {
		nombrePulsera = defaultBraceletName
	}

	srv.sendWhatsApp(ctx, user.Telefono, nombrePulsera, alert)
	srv.sendPush(ctx, binding.UserID, nombrePulsera, alert)

	return nil
}

// sendWhatsApp delivers the alert message through the messaging gateway.
func (srv *alertNotifier) sendWhatsApp(ctx context.Context, telefono, nombrePulsera string, alert *usecase.FallAlert) {
	if srv.messenger == nil || telefono == "" {
		return
	}

	body := buildWhatsAppAlertBody(nombrePulsera, alert)
	if err := srv.messenger.SendWhatsApp(ctx, telefono, body); err != nil {
		srv.observeDelivery(metrics.ChannelWhatsApp, false)
		srv.log(ctx).Error("WhatsApp alert delivery failed",
			slog.String("token", alert.Token),
			slog.String("error", err.Error()),
		)

		return
	}

	srv.observeDelivery(metrics.ChannelWhatsApp, true)
	srv.log(ctx).Info("WhatsApp alert sent", slog.String("token", alert.Token))
}

// sendPush fans the alert out to every active device of the caregiver.
func (srv *alertNotifier) sendPush(ctx context.Context, userID uuid.UUID, nombrePulsera string, alert *usecase.FallAlert) {
	if srv.push == nil {
		return
	}

	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to load caregiver devices for push",
			slog.String("token", alert.Token),
			slog.String("error", err.Error()),
		)

		return
	}

	title := "Alerta de caída: " + nombrePulsera
	data := map[string]string{
		"token":   alert.Token,
		"mensaje": alert.Mensaje,
	}

	for _, device := range devices {
		if err := srv.push.SendPush(ctx, device.FCMToken, title, alert.Mensaje, data); err != nil {
			srv.observeDelivery(metrics.ChannelPush, false)
			srv.log(ctx).Error("Push alert delivery failed",
				slog.String("token", alert.Token),
				slog.String("deviceID", device.ID.String()),
				slog.String("error", err.Error()),
			)

			continue
		}

		srv.observeDelivery(metrics.ChannelPush, true)
	}
}

func (srv *alertNotifier) observeDelivery(channel string, sent bool) {
	if srv.metrics == nil {
		return
	}

	if sent {
		srv.metrics.NotificationsSent.WithLabelValues(channel).Inc()
	} else {
		srv.metrics.NotificationsFailed.WithLabelValues(channel).Inc()
	}
}

// buildWhatsAppAlertBody renders the alert message shown to the caregiver.
func buildWhatsAppAlertBody(nombrePulsera string, alert *usecase.FallAlert) string {
	temperatura := "N/A"
	if alert.Temperatura != nil {
		temperatura = strconv.FormatFloat(*alert.Temperatura, 'f', -1, 64)
	}

	return fmt.Sprintf(
		"🚨 *ALERTA DE CAÍDA DETECTADA*\n\n"+
			"👤 *Pulsera:* %s\n"+
			"🆔 *Token:* %s\n"+
			"🌡 *Temperatura:* %s °C\n"+
			"📩 *Mensaje recibido:* %s\n\n"+
			"‼ Se requiere asistencia inmediata.",
		nombrePulsera, alert.Token, temperatura, alert.Mensaje,
	)
}
