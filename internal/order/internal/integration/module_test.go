// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/takeaway/internal/address"
	"github.com/ecodeclub/takeaway/internal/cart"
	"github.com/ecodeclub/takeaway/internal/catalog"
	"github.com/ecodeclub/takeaway/internal/notification"
	"github.com/ecodeclub/takeaway/internal/order"
	"github.com/ecodeclub/takeaway/internal/order/internal/domain"
	"github.com/ecodeclub/takeaway/internal/order/internal/errs"
	"github.com/ecodeclub/takeaway/internal/order/internal/event"
	"github.com/ecodeclub/takeaway/internal/order/internal/repository/dao"
	"github.com/ecodeclub/takeaway/internal/order/internal/web"
	"github.com/ecodeclub/takeaway/internal/payment"
	"github.com/ecodeclub/takeaway/internal/test"
	testioc "github.com/ecodeclub/takeaway/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
)

const testUID = 234

type fakePaymentService struct{}

func (f *fakePaymentService) Prepay(_ context.Context, pmt payment.Payment) (payment.Payment, error) {
	pmt.WechatCodeURL = "weixin://wxpay/bizpayurl?pr=fake"
	return pmt, nil
}

func (f *fakePaymentService) HandleWechatCallback(_ context.Context, _ *payments.Transaction) error {
	return nil
}

func (f *fakePaymentService) FindPaymentByOrderSN(_ context.Context, orderSN string) (payment.Payment, error) {
	return payment.Payment{OrderSN: orderSN}, nil
}

type ModuleTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	q      mq.MQ
	dao    dao.OrderDAO
}

func (s *ModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.q = testioc.InitMQ()
	c := testioc.InitCache()

	catalogModule := catalog.InitModule(s.db)
	cartModule := cart.InitModule(s.db, catalogModule)
	addressModule := address.InitModule(s.db)
	notificationModule := notification.InitModule()
	paymentModule := &payment.Module{Svc: &fakePaymentService{}}

	orderModule, err := order.InitModule(s.db, s.q, c,
		cartModule, addressModule, paymentModule, notificationModule)
	require.NoError(s.T(), err)
	orderModule.Consumer.Start(context.Background())

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: testUID,
		}))
	})
	orderModule.Hdl.PrivateRoutes(server.Engine)
	orderModule.AdminHdl.PrivateRoutes(server.Engine)

	s.server = server
	s.dao = dao.NewOrderGORMDAO(s.db)
}

func (s *ModuleTestSuite) TearDownSuite() {
	for _, table := range []string{"orders", "order_details", "shopping_carts", "address_books"} {
		require.NoError(s.T(), s.db.Exec("DROP TABLE `"+table+"`").Error)
	}
}

func (s *ModuleTestSuite) TearDownTest() {
	for _, table := range []string{"orders", "order_details", "shopping_carts", "address_books"} {
		require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `"+table+"`").Error)
	}
}

func (s *ModuleTestSuite) seedAddress(uid int64) int64 {
	now := time.Now().UnixMilli()
	res := s.db.Exec("INSERT INTO `address_books` (uid, consignee, phone, detail, is_default, ctime, utime) VALUES (?, ?, ?, ?, 1, ?, ?)",
		uid, "张三", "13800001234", "北京市朝阳区某某路1号", now, now)
	require.NoError(s.T(), res.Error)
	var id int64
	require.NoError(s.T(), s.db.Raw("SELECT id FROM `address_books` WHERE uid = ? ORDER BY id DESC LIMIT 1", uid).Scan(&id).Error)
	return id
}

func (s *ModuleTestSuite) seedCartLines(uid int64) {
	now := time.Now().UnixMilli()
	res := s.db.Exec("INSERT INTO `shopping_carts` (uid, dish_id, setmeal_id, flavor, name, image, price, quantity, ctime, utime) VALUES "+
		"(?, 11, 0, '微辣', '宫保鸡丁', '', 2800, 2, ?, ?), "+
		"(?, 0, 21, '', '商务套餐A', '', 4500, 1, ?, ?)",
		uid, now, now, uid, now, now)
	require.NoError(s.T(), res.Error)
}

func (s *ModuleTestSuite) seedOrder(uid int64, sn string, status uint8) int64 {
	id, err := s.dao.CreateOrder(context.Background(), dao.Order{
		SN:        sn,
		Uid:       uid,
		Status:    domain.StatusPendingPayment.ToUint8(),
		PayStatus: domain.PayStatusUnpaid.ToUint8(),
		Amount:    10100,
		Consignee: "张三",
		Phone:     "13800001234",
		Address:   "北京市朝阳区某某路1号",
	}, []dao.OrderDetail{
		{DishId: 11, Name: "宫保鸡丁", Flavor: "微辣", Price: 2800, Quantity: 2},
		{SetmealId: 21, Name: "商务套餐A", Price: 4500, Quantity: 1},
	}, func(tx *egorm.Component) error { return nil })
	require.NoError(s.T(), err)
	if status != domain.StatusPendingPayment.ToUint8() {
		require.NoError(s.T(), s.db.Exec("UPDATE `orders` SET status = ? WHERE id = ?", status, id).Error)
	}
	return id
}

func (s *ModuleTestSuite) TestSubmitOrder() {
	t := s.T()
	addressID := s.seedAddress(testUID)
	s.seedCartLines(testUID)

	req, err := http.NewRequest(http.MethodPost,
		"/order/submit", iox.NewJSONReader(web.SubmitOrderReq{
			RequestID: fmt.Sprintf("submit-%d", time.Now().UnixNano()),
			AddressID: addressID,
			Remark:    "不要香菜",
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.SubmitOrderResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	resp := recorder.MustScan()
	assert.NotZero(t, resp.Data.OrderID)
	assert.Len(t, resp.Data.OrderSN, 32)
	assert.Equal(t, int64(10100), resp.Data.Amount)

	created, err := s.dao.FindBySNAndUID(context.Background(), resp.Data.OrderSN, testUID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingPayment.ToUint8(), created.Status)

	details, err := s.dao.FindDetailsByOrderID(context.Background(), created.Id)
	require.NoError(t, err)
	assert.Len(t, details, 2)

	// 购物车在下单事务里清空
	var count int64
	require.NoError(t, s.db.Raw("SELECT COUNT(*) FROM `shopping_carts` WHERE uid = ?", testUID).Scan(&count).Error)
	assert.Zero(t, count)
}

func (s *ModuleTestSuite) TestSubmitOrderDuplicateRequest() {
	t := s.T()
	addressID := s.seedAddress(testUID)
	s.seedCartLines(testUID)

	requestID := fmt.Sprintf("dup-%d", time.Now().UnixNano())
	submit := func() *test.JSONResponseRecorder[web.SubmitOrderResp] {
		req, err := http.NewRequest(http.MethodPost,
			"/order/submit", iox.NewJSONReader(web.SubmitOrderReq{
				RequestID: requestID,
				AddressID: addressID,
			}))
		require.NoError(t, err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[web.SubmitOrderResp]()
		s.server.ServeHTTP(recorder, req)
		return recorder
	}

	first := submit()
	require.Equal(t, 200, first.Code)

	second := submit()
	require.Equal(t, 500, second.Code)
	assert.Equal(t, errs.DuplicateRequest.Code, second.MustScan().Code)
}

func (s *ModuleTestSuite) TestSubmitOrderEmptyCart() {
	t := s.T()
	addressID := s.seedAddress(testUID)

	req, err := http.NewRequest(http.MethodPost,
		"/order/submit", iox.NewJSONReader(web.SubmitOrderReq{
			RequestID: fmt.Sprintf("empty-%d", time.Now().UnixNano()),
			AddressID: addressID,
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, errs.EmptyCart.Code, recorder.MustScan().Code)
}

func (s *ModuleTestSuite) TestSubmitOrderAddressNotFound() {
	t := s.T()
	s.seedCartLines(testUID)

	req, err := http.NewRequest(http.MethodPost,
		"/order/submit", iox.NewJSONReader(web.SubmitOrderReq{
			RequestID: fmt.Sprintf("noaddr-%d", time.Now().UnixNano()),
			AddressID: 99999,
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, errs.AddressNotFound.Code, recorder.MustScan().Code)
}

func (s *ModuleTestSuite) TestCreateOrderRollsBackWhenCartClearFails() {
	t := s.T()
	_, err := s.dao.CreateOrder(context.Background(), dao.Order{
		SN:        fmt.Sprintf("rollback-%d", time.Now().UnixNano()),
		Uid:       testUID,
		Status:    domain.StatusPendingPayment.ToUint8(),
		PayStatus: domain.PayStatusUnpaid.ToUint8(),
		Amount:    100,
	}, []dao.OrderDetail{
		{DishId: 11, Name: "宫保鸡丁", Price: 100, Quantity: 1},
	}, func(tx *egorm.Component) error {
		return errors.New("模拟清空购物车失败")
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, s.db.Raw("SELECT COUNT(*) FROM `orders`").Scan(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, s.db.Raw("SELECT COUNT(*) FROM `order_details`").Scan(&count).Error)
	assert.Zero(t, count)
}

func (s *ModuleTestSuite) TestPaymentCallbackMarksOrderPaid() {
	t := s.T()
	sn := fmt.Sprintf("paid-%d", time.Now().UnixNano())
	s.seedOrder(testUID, sn, domain.StatusPendingPayment.ToUint8())

	producer, err := s.q.Producer("payment_events")
	require.NoError(t, err)
	evt := event.PaymentEvent{
		OrderSN: sn,
		Status:  payment.StatusPaidSuccess.ToUint8(),
	}
	data, err := json.Marshal(evt)
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{Key: []byte(sn), Value: data})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		o, er := s.dao.FindBySN(context.Background(), sn)
		return er == nil &&
			o.Status == domain.StatusToBeConfirmed.ToUint8() &&
			o.PayStatus == domain.PayStatusPaid.ToUint8() &&
			o.PaidAt > 0
	}, 5*time.Second, 100*time.Millisecond)

	// 重复通知不应该改变终态
	_, err = producer.Produce(context.Background(), &mq.Message{Key: []byte(sn), Value: data})
	require.NoError(t, err)
	time.Sleep(time.Second)
	o, err := s.dao.FindBySN(context.Background(), sn)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusToBeConfirmed.ToUint8(), o.Status)
}

func (s *ModuleTestSuite) TestAdminOrderFlow() {
	t := s.T()
	sn := fmt.Sprintf("admin-%d", time.Now().UnixNano())
	orderID := s.seedOrder(testUID, sn, domain.StatusToBeConfirmed.ToUint8())

	post := func(path string, body any) *test.JSONResponseRecorder[any] {
		req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
		require.NoError(t, err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[any]()
		s.server.ServeHTTP(recorder, req)
		return recorder
	}

	// 接单 -> 派送 -> 完成
	require.Equal(t, 200, post("/order/confirm", web.ConfirmOrderReq{OrderID: orderID}).Code)
	require.Equal(t, 200, post("/order/delivery", web.StartDeliveryReq{OrderID: orderID}).Code)
	require.Equal(t, 200, post("/order/complete", web.CompleteOrderReq{OrderID: orderID}).Code)

	o, err := s.dao.FindBySN(context.Background(), sn)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted.ToUint8(), o.Status)
	assert.NotZero(t, o.CompletedAt)

	// 已完成的订单不允许再接单
	recorder := post("/order/confirm", web.ConfirmOrderReq{OrderID: orderID})
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, errs.InvalidStateTransition.Code, recorder.MustScan().Code)
}

func (s *ModuleTestSuite) TestCancelOrder() {
	t := s.T()
	sn := fmt.Sprintf("cancel-%d", time.Now().UnixNano())
	orderID := s.seedOrder(testUID, sn, domain.StatusPendingPayment.ToUint8())

	req, err := http.NewRequest(http.MethodPost,
		"/order/cancel", iox.NewJSONReader(web.CancelOrderReq{OrderID: orderID}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	o, err := s.dao.FindBySN(context.Background(), sn)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled.ToUint8(), o.Status)
	assert.Equal(t, "用户取消", o.CancelReason)
	assert.NotZero(t, o.CancelledAt)

	// 已取消的订单不能再次取消
	recorder = test.NewJSONResponseRecorder[any]()
	req, err = http.NewRequest(http.MethodPost,
		"/order/cancel", iox.NewJSONReader(web.CancelOrderReq{OrderID: orderID}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, errs.InvalidStateTransition.Code, recorder.MustScan().Code)
}

func (s *ModuleTestSuite) TestListAndDetail() {
	t := s.T()
	sn1 := fmt.Sprintf("list1-%d", time.Now().UnixNano())
	sn2 := fmt.Sprintf("list2-%d", time.Now().UnixNano())
	s.seedOrder(testUID, sn1, domain.StatusPendingPayment.ToUint8())
	s.seedOrder(testUID, sn2, domain.StatusToBeConfirmed.ToUint8())

	req, err := http.NewRequest(http.MethodPost,
		"/order/list", iox.NewJSONReader(web.ListOrdersReq{Offset: 0, Limit: 10}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.ListOrdersResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	assert.Equal(t, int64(2), resp.Data.Total)
	assert.Len(t, resp.Data.Orders, 2)

	detailReq, err := http.NewRequest(http.MethodPost,
		"/order/detail", iox.NewJSONReader(web.RetrieveOrderDetailReq{OrderSN: sn1}))
	require.NoError(t, err)
	detailReq.Header.Set("content-type", "application/json")
	detailRecorder := test.NewJSONResponseRecorder[web.RetrieveOrderDetailResp]()
	s.server.ServeHTTP(detailRecorder, detailReq)
	require.Equal(t, 200, detailRecorder.Code)
	detail := detailRecorder.MustScan()
	assert.Equal(t, sn1, detail.Data.Order.SN)
	assert.Len(t, detail.Data.Order.Items, 2)
}

func (s *ModuleTestSuite) TestSearchOrdersByStatus() {
	t := s.T()
	s.seedOrder(testUID, fmt.Sprintf("search1-%d", time.Now().UnixNano()), domain.StatusToBeConfirmed.ToUint8())
	s.seedOrder(testUID, fmt.Sprintf("search2-%d", time.Now().UnixNano()), domain.StatusToBeConfirmed.ToUint8())
	s.seedOrder(testUID, fmt.Sprintf("search3-%d", time.Now().UnixNano()), domain.StatusPendingPayment.ToUint8())

	req, err := http.NewRequest(http.MethodPost,
		"/order/search", iox.NewJSONReader(web.SearchOrdersReq{
			Status: domain.StatusToBeConfirmed.ToUint8(),
			Offset: 0,
			Limit:  10,
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.ListOrdersResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	assert.Equal(t, int64(2), resp.Data.Total)
}

func TestOrderModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}
